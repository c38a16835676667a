package column

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Document is a standalone column configuration document: a versioned
// mapping from column name to [Config]. The document is identified by the
// presence of a "columnConfig" key.
//
// Example:
//
//	{
//	  "columnConfig": "v1",
//	  "columns": {
//	    "price": {
//	      "type": "number",
//	      "title": "Price",
//	      "type_options": {"min_value": 0, "format": "%.2f"}
//	    }
//	  }
//	}
type Document struct {
	// Version identifies the document format. Use "v1".
	Version string `json:"columnConfig"`

	// Columns maps column names to their configuration.
	Columns map[string]Config `json:"columns"`
}

// ParseDocument parses a standalone column configuration document in JSON
// or YAML form and returns the per-column configs. Parsed configs go
// through the same structural validation as the builders: unknown type or
// width tags and option keys irrelevant to the declared type are rejected.
// Temporal bounds and defaults in documents are already canonical ISO-8601
// strings and pass through verbatim.
func ParseDocument(data []byte) (map[string]Config, error) {
	jsonData, err := toJSON(data)
	if err != nil {
		return nil, fmt.Errorf("invalid column config document: %w", err)
	}

	// Quick check: is this a column config doc?
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("invalid column config document: %w", err)
	}
	if _, ok := probe["columnConfig"]; !ok {
		return nil, fmt.Errorf("missing \"columnConfig\" key: not a column config document")
	}

	var doc Document
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("invalid column config document: %w", err)
	}

	for name, cfg := range doc.Columns {
		if err := validateConfig(cfg); err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
	}
	return doc.Columns, nil
}

// validateConfig checks the structural invariants of a parsed Config.
func validateConfig(cfg Config) error {
	if err := checkType(cfg.Type); err != nil {
		return err
	}
	if err := checkWidth(cfg.Width); err != nil {
		return err
	}
	if cfg.Default.Kind() == KindList {
		return fmt.Errorf("column config: default: unsupported value kind %s", KindList)
	}
	allowed := allowedOptionKeys(cfg.Type)
	for key, val := range cfg.TypeOptions {
		if !containsKey(allowed, key) {
			return fmt.Errorf("column config: option %q is not valid for type %q", key, cfg.Type)
		}
		if key == OptOptions {
			if !val.IsNull() && val.Kind() != KindList {
				return fmt.Errorf("column config: option %q: expected a list, got %s", key, val.Kind())
			}
			continue
		}
		if val.Kind() == KindList {
			return fmt.Errorf("column config: option %q: unsupported value kind %s", key, KindList)
		}
	}
	return nil
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// toJSON converts document bytes to JSON. Inputs starting with a JSON
// object delimiter pass through; everything else is treated as YAML and
// re-encoded, so both formats share one decode path.
func toJSON(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	if trimmed[0] == '{' {
		return trimmed, nil
	}
	var raw any
	if err := yaml.Unmarshal(trimmed, &raw); err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

// MarshalDocument renders per-column configs as a canonical "v1" JSON
// document with columns in sorted order. The output round-trips through
// [ParseDocument].
func MarshalDocument(columns map[string]Config) ([]byte, error) {
	doc := Document{Version: "v1", Columns: columns}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ColumnNames returns the column names of a parsed document in sorted
// order, for deterministic iteration.
func ColumnNames(columns map[string]Config) []string {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
