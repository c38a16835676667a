package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/gridcol/pkg/column"
)

const sampleDoc = `{
	"columnConfig": "v1",
	"columns": {
		"price": {
			"type": "number",
			"title": "Price",
			"type_options": {"min_value": 0, "format": "%.2f"}
		}
	}
}`

const sampleSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "maxLength": 30},
		"price": {"type": "number", "minimum": 0}
	}
}`

func TestLoadInput_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	data, err := loadInput(strings.NewReader(""), []string{path})
	require.NoError(t, err)
	assert.Equal(t, []byte(sampleDoc), data)
}

func TestLoadInput_MissingFile(t *testing.T) {
	_, err := loadInput(strings.NewReader(""), []string{filepath.Join(t.TempDir(), "nope.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.json")
}

func TestLoadInput_FromStdin(t *testing.T) {
	data, err := loadInput(strings.NewReader(sampleDoc), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte(sampleDoc), data)
}

func TestLoadInput_EmptyStdin(t *testing.T) {
	_, err := loadInput(strings.NewReader(""), nil)
	assert.ErrorIs(t, err, errNoInput)
}

func TestParseColumns_Document(t *testing.T) {
	columns, err := parseColumns([]byte(sampleDoc), false)
	require.NoError(t, err)
	require.Len(t, columns, 1)
	assert.Equal(t, column.TypeNumber, columns["price"].Type)
}

func TestParseColumns_Schema(t *testing.T) {
	columns, err := parseColumns([]byte(sampleSchema), true)
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, column.TypeText, columns["name"].Type)
	assert.Equal(t, column.TypeNumber, columns["price"].Type)
	require.NotNil(t, columns["name"].Required)
}

func TestRenderColumns_JSON(t *testing.T) {
	columns, err := parseColumns([]byte(sampleDoc), false)
	require.NoError(t, err)

	out, err := renderColumns(columns, false)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "v1", doc["columnConfig"])
}

func TestRenderColumns_YAML(t *testing.T) {
	columns, err := parseColumns([]byte(sampleDoc), false)
	require.NoError(t, err)

	out, err := renderColumns(columns, true)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "v1", doc["columnConfig"])
	// Wire field names are shared between encodings.
	assert.Contains(t, string(out), "type_options")
}

func TestRootCommand_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	parsed, err := column.ParseDocument(stdout.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Price", parsed["price"].Title)
}

func TestRootCommand_RejectsBadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"columnConfig":"v1","columns":{"x":{"type":"dropdown"}}}`), 0o644))

	rootCmd.SetArgs([]string{path})
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}
