// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// Conversion holds a year count and the quantities derived from it.
type Conversion struct {
	// Input is the value as it was received, before coercion.
	Input any `json:"input" yaml:"input"`

	// InputType is the observed Go type name of Input (e.g. "string", "int").
	InputType string `json:"input_type" yaml:"input_type"`

	// Years is the coerced year count.
	Years float64 `json:"years" yaml:"years"`

	Days    float64 `json:"days" yaml:"days"`
	Hours   float64 `json:"hours" yaml:"hours"`
	Minutes float64 `json:"minutes" yaml:"minutes"`
	Seconds float64 `json:"seconds" yaml:"seconds"`
}

// HistoryEntry is a Conversion persisted in the history ledger.
type HistoryEntry struct {
	ID         int64     `json:"id" yaml:"id"`
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
	Conversion `yaml:",inline"`
}

// OutputFormat selects how a conversion is rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat validates a format name. An empty name selects text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported format %q: use text, yaml, or json", s)
}
