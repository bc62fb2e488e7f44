// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/timeconv/pkg/types"
)

// Render writes a single conversion to w in format f.
func Render(w io.Writer, c types.Conversion, f types.OutputFormat) error {
	switch f {
	case types.FormatText, "":
		return writeText(w, c)
	case types.FormatYAML:
		return writeYAML(w, c)
	case types.FormatJSON:
		return writeJSON(w, c)
	}
	return fmt.Errorf("unsupported format %q", f)
}

// RenderAll writes conversions to w. Text reports are written one after
// another; YAML and JSON produce a single sequence document.
func RenderAll(w io.Writer, cs []types.Conversion, f types.OutputFormat) error {
	switch f {
	case types.FormatText, "":
		for _, c := range cs {
			if err := writeText(w, c); err != nil {
				return err
			}
		}
		return nil
	case types.FormatYAML:
		return writeYAML(w, cs)
	case types.FormatJSON:
		return writeJSON(w, cs)
	}
	return fmt.Errorf("unsupported format %q", f)
}

// writeText prints the header line and one indented line per derived unit.
func writeText(w io.Writer, c types.Conversion) error {
	_, err := fmt.Fprintf(w, "%v is:\n   %s days\n   %s hours\n   %s minutes\n   %s seconds\n",
		c.Input,
		formatQuantity(c.Days),
		formatQuantity(c.Hours),
		formatQuantity(c.Minutes),
		formatQuantity(c.Seconds),
	)
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

// formatQuantity prints v without an exponent and without trailing zeros.
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
