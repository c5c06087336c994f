package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"lead-consolidator/core/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

type sampleTables struct{}

func (sampleTables) Tables() []output.Data {
	return []output.Data{
		{Title: "First", Headers: []string{"Key", "Value"}, Rows: [][]string{{"_id", "1"}}},
		{Title: "Second", Headers: []string{"Field"}, Rows: [][]string{{"email"}}},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    output.Format
		wantErr bool
	}{
		{"table", output.FormatTable, false},
		{"JSON", output.FormatJSON, false},
		{"yaml", output.FormatYAML, false},
		{"", "", false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := output.ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_Explicit(t *testing.T) {
	assert.Equal(t, output.FormatYAML, output.DetectFormat("YAML"))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.NewFormatter(output.FormatJSON).Format(&buf, sample{Name: "a", Count: 2}))

	var back sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, sample{Name: "a", Count: 2}, back)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.NewFormatter(output.FormatYAML).Format(&buf, sample{Name: "a", Count: 2}))
	assert.Contains(t, buf.String(), "name: a")
	assert.Contains(t, buf.String(), "count: 2")
}

func TestTableFormatter_Tabular(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.NewFormatter(output.FormatTable).Format(&buf, sampleTables{}))

	out := buf.String()
	assert.Contains(t, out, "First")
	assert.Contains(t, out, "Second")
	assert.Contains(t, out, "_id")
	assert.Contains(t, out, "email")
}

func TestTableFormatter_FallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.NewFormatter(output.FormatTable).Format(&buf, sample{Name: "a"}))
	assert.True(t, json.Valid(buf.Bytes()))
}
