// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/timeconv/pkg/types"
)

func mustConvert(t *testing.T, v any) types.Conversion {
	t.Helper()
	c, err := Convert(v)
	require.NoError(t, err)
	return c
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, mustConvert(t, "60"), types.FormatYAML))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "60", got["input"])
	assert.Equal(t, "string", got["input_type"])
	assert.EqualValues(t, 21900, got["days"])
	assert.EqualValues(t, 1892160000, got["seconds"])
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, mustConvert(t, 2), types.FormatJSON))

	var got types.Conversion
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2.0, got.Years)
	assert.Equal(t, 730.0, got.Days)
	assert.Equal(t, 17520.0, got.Hours)
	assert.Equal(t, 1051200.0, got.Minutes)
	assert.Equal(t, 63072000.0, got.Seconds)
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, mustConvert(t, 0), types.FormatText))
	assert.Equal(t, "0 is:\n   0 days\n   0 hours\n   0 minutes\n   0 seconds\n", buf.String())
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, mustConvert(t, 1), types.OutputFormat("csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestRenderAll_JSONList(t *testing.T) {
	var buf bytes.Buffer
	cs := []types.Conversion{mustConvert(t, 1), mustConvert(t, 2)}
	require.NoError(t, RenderAll(&buf, cs, types.FormatJSON))

	var got []types.Conversion
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 31536000.0, got[0].Seconds)
	assert.Equal(t, 63072000.0, got[1].Seconds)
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "1892160000", formatQuantity(1892160000))
	assert.Equal(t, "182.5", formatQuantity(182.5))
	assert.Equal(t, "-365", formatQuantity(-365))
}
