package column

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FromJSONSchema derives per-property [Config] records from a standard
// JSON Schema document. It reads the schema's properties (for objects) or
// items.properties (for arrays of objects) and maps standard JSON Schema
// fields onto column configuration:
//
//   - type string → text; integer/number → number; boolean → checkbox;
//     array → list
//   - format (date, date-time, time, uri) → date/datetime/time/url
//   - enum → select with the enum values as options
//   - title → Title, description → Help
//   - deprecated: true → Hidden, readOnly: true → Disabled
//   - required membership → Required
//   - default → Default
//   - minimum/maximum → min_value/max_value (numeric types)
//   - minLength/maxLength → min_chars/max_chars (text and url)
//   - pattern → validate (text)
//   - multipleOf → step (number)
//
// The schemaJSON must be valid JSON. Returns a map keyed by property name.
func FromJSONSchema(schemaJSON []byte) (map[string]Config, error) {
	dec := json.NewDecoder(strings.NewReader(string(schemaJSON)))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON schema: %w", err)
	}

	properties, required := findProperties(raw)
	if properties == nil {
		return nil, nil
	}
	requiredSet := make(map[string]bool, len(required))
	for _, r := range required {
		requiredSet[r] = true
	}

	configs := make(map[string]Config, len(properties))
	for key, propRaw := range properties {
		propMap, ok := propRaw.(map[string]any)
		if !ok {
			continue
		}
		cfg, err := configFromProperty(propMap, requiredSet[key])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", key, err)
		}
		configs[key] = cfg
	}
	return configs, nil
}

// configFromProperty derives one Config from a single property schema.
func configFromProperty(prop map[string]any, required bool) (Config, error) {
	colType := columnTypeFor(prop)

	cfg := Config{Type: colType}

	if title, ok := prop["title"].(string); ok {
		cfg.Title = title
	}
	if desc, ok := prop["description"].(string); ok {
		cfg.Help = desc
	}
	if dep, ok := prop["deprecated"].(bool); ok && dep {
		cfg.Hidden = &dep
	}
	if ro, ok := prop["readOnly"].(bool); ok && ro {
		cfg.Disabled = &ro
	}
	if required {
		cfg.Required = &required
	}

	if defRaw, ok := prop["default"]; ok {
		def, err := valueFromJSON(defRaw)
		if err != nil {
			return Config{}, err
		}
		if def.Kind() == KindList {
			return Config{}, fmt.Errorf("column config: default: unsupported value kind %s", KindList)
		}
		cfg.Default = def
	}

	opts := map[string]Value{}
	switch colType {
	case TypeNumber:
		if v, ok := numberField(prop, "minimum"); ok {
			opts[OptMinValue] = v
		}
		if v, ok := numberField(prop, "maximum"); ok {
			opts[OptMaxValue] = v
		}
		if v, ok := numberField(prop, "multipleOf"); ok {
			opts[OptStep] = v
		}
	case TypeText:
		if v, ok := numberField(prop, "minLength"); ok {
			opts[OptMinChars] = v
		}
		if v, ok := numberField(prop, "maxLength"); ok {
			opts[OptMaxChars] = v
		}
		if pattern, ok := prop["pattern"].(string); ok && pattern != "" {
			opts[OptValidate] = String(pattern)
		}
	case TypeURL:
		if v, ok := numberField(prop, "minLength"); ok {
			opts[OptMinChars] = v
		}
		if v, ok := numberField(prop, "maxLength"); ok {
			opts[OptMaxChars] = v
		}
	case TypeSelect:
		enumVals, _ := prop["enum"].([]any)
		options := make([]Value, 0, len(enumVals))
		for _, e := range enumVals {
			v, err := valueFromJSON(e)
			if err != nil {
				return Config{}, err
			}
			options = append(options, v)
		}
		opts[OptOptions] = List(options...)
	case TypeDate, TypeDateTime, TypeTime:
		// min/max land under min_value/max_value; temporal strings in
		// schemas are already canonical.
		if s, ok := prop["minimum"].(string); ok {
			opts[OptMinValue] = String(s)
		}
		if s, ok := prop["maximum"].(string); ok {
			opts[OptMaxValue] = String(s)
		}
	}
	if len(opts) > 0 {
		cfg.TypeOptions = opts
	}
	return cfg, nil
}

// columnTypeFor maps a property schema to a column type tag. Enumerated
// properties become select columns regardless of their base type.
func columnTypeFor(prop map[string]any) Type {
	if enumVals, ok := prop["enum"].([]any); ok && len(enumVals) > 0 {
		return TypeSelect
	}
	switch jsonSchemaType(prop) {
	case "integer", "number":
		return TypeNumber
	case "boolean":
		return TypeCheckbox
	case "array":
		return TypeList
	case "string":
		switch format, _ := prop["format"].(string); format {
		case "date":
			return TypeDate
		case "date-time":
			return TypeDateTime
		case "time":
			return TypeTime
		case "uri", "iri":
			return TypeURL
		}
		return TypeText
	}
	// Unknown or missing type: let the consumer infer from the data.
	return ""
}

// numberField extracts a numeric schema field as a Value.
func numberField(prop map[string]any, field string) (Value, bool) {
	raw, ok := prop[field]
	if !ok {
		return Null(), false
	}
	v, err := valueFromJSON(raw)
	if err != nil {
		return Null(), false
	}
	switch v.Kind() {
	case KindInt, KindFloat:
		return v, true
	}
	return Null(), false
}

// findProperties locates the properties map and required list from a
// schema, handling both object schemas and array-of-objects schemas.
func findProperties(schema map[string]any) (map[string]any, []string) {
	schemaType, _ := schema["type"].(string)

	if schemaType == "array" {
		if items, ok := schema["items"].(map[string]any); ok {
			return findProperties(items)
		}
		return nil, nil
	}

	if props, ok := schema["properties"].(map[string]any); ok {
		return props, extractStringArray(schema["required"])
	}
	return nil, nil
}

// extractStringArray converts an []any to []string.
func extractStringArray(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// jsonSchemaType extracts the type string from a property schema. Handles
// both "type": "string" and "type": ["string", "null"].
func jsonSchemaType(prop map[string]any) string {
	switch t := prop["type"].(type) {
	case string:
		return t
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && s != "null" {
				return s
			}
		}
	}
	return ""
}
