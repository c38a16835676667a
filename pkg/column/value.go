package column

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Kind identifies which variant a [Value] holds.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindDateTime
	KindDate
	KindTimeOfDay
	KindList
)

// String returns the kind name for debugging and error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDateTime:
		return "datetime"
	case KindDate:
		return "date"
	case KindTimeOfDay:
		return "time"
	case KindList:
		return "list"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is a tagged scalar used for the loosely typed configuration
// parameters: defaults, bounds, and type option values. The zero Value is
// null. Temporal variants are rendered to their canonical ISO-8601 string
// form when a Value is placed into a [Config]; a Config never carries a
// native time.Time.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	b    bool
	t    time.Time
	list []Value
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, num: i} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, flt: f} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// DateTime returns a Value holding a point in time. It renders as an
// RFC 3339 / ISO-8601 timestamp, keeping the offset of t's location.
func DateTime(t time.Time) Value { return Value{kind: KindDateTime, t: t} }

// Date returns a Value holding the calendar date of t. The clock and
// location of t are ignored when rendering.
func Date(t time.Time) Value { return Value{kind: KindDate, t: t} }

// TimeOfDay returns a Value holding the wall-clock time of t. The date and
// location of t are ignored when rendering.
func TimeOfDay(t time.Time) Value { return Value{kind: KindTimeOfDay, t: t} }

// List returns a Value holding an ordered list of scalar values.
func List(vs ...Value) Value { return Value{kind: KindList, list: vs} }

// Null returns the null Value. Equivalent to the zero Value.
func Null() Value { return Value{} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null Value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsZero reports whether v is the null Value. Implemented so that struct
// fields tagged `json:",omitzero"` omit null values.
func (v Value) IsZero() bool { return v.IsNull() }

// Equal reports whether two Values hold the same variant and payload.
// Values contain list variants, so they are not comparable with ==.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.num == o.num
	case KindFloat:
		return v.flt == o.flt
	case KindBool:
		return v.b == o.b
	case KindDateTime, KindDate, KindTimeOfDay:
		return v.isoString() == o.isoString()
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// isTemporal reports whether v holds a datetime, date, or time-of-day.
func (v Value) isTemporal() bool {
	return v.kind == KindDateTime || v.kind == KindDate || v.kind == KindTimeOfDay
}

// isoString renders a temporal Value to its canonical ISO-8601 form.
// Fractional seconds are included only when present, matching the common
// isoformat behavior of datetime libraries.
func (v Value) isoString() string {
	switch v.kind {
	case KindDateTime:
		return v.t.Format("2006-01-02T15:04:05.999999999Z07:00")
	case KindDate:
		return v.t.Format("2006-01-02")
	case KindTimeOfDay:
		return v.t.Format("15:04:05.999999999")
	}
	return ""
}

// normalize converts temporal variants into their canonical string form.
// All other variants pass through unchanged.
func (v Value) normalize() Value {
	if v.isTemporal() {
		return String(v.isoString())
	}
	return v
}

// Interface returns the native Go representation of v: nil, string, int64,
// float64, bool, or []any. Temporal variants return their ISO-8601 string.
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.b
	case KindDateTime, KindDate, KindTimeOfDay:
		return v.isoString()
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	}
	return nil
}

// MarshalJSON renders v as the corresponding JSON scalar (or array for
// lists). Temporal variants render as ISO-8601 strings.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON parses a JSON scalar or array of scalars. Numbers without a
// fraction or exponent parse as KindInt, all other numbers as KindFloat.
// JSON objects are rejected: option values are scalars.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := valueFromJSON(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// valueFromJSON converts a decoded JSON value (with json.Number for
// numbers) into a Value.
func valueFromJSON(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case json.Number:
		return numberValue(x)
	case float64:
		// Plain json.Unmarshal without UseNumber.
		if x == float64(int64(x)) {
			return Int(int64(x)), nil
		}
		return Float(x), nil
	case int:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case []any:
		items := make([]Value, 0, len(x))
		for _, item := range x {
			iv, err := valueFromJSON(item)
			if err != nil {
				return Null(), err
			}
			if iv.kind == KindList {
				return Null(), fmt.Errorf("column config: nested lists are not valid option values")
			}
			items = append(items, iv)
		}
		return List(items...), nil
	default:
		return Null(), fmt.Errorf("column config: expected a scalar value, got %T", raw)
	}
}

// numberValue parses a json.Number, preserving integers.
func numberValue(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return Int(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return Null(), fmt.Errorf("column config: invalid number %q: %w", s, err)
	}
	return Float(f), nil
}
