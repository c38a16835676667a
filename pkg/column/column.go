// Package column builds normalized column configuration records for
// editable/displayable data grids. A [Config] declares how a single column
// renders and behaves (type, title, width, bounds, formatting, default
// value); it is consumed by a separate rendering/editing engine and carries
// no behavior of its own.
//
// A Config can be:
//   - constructed programmatically via the per-type builders ([NumberColumn],
//     [TextColumn], ...) or the generic [New]
//   - parsed from a standalone JSON/YAML document via [ParseDocument]
//   - derived from a JSON Schema document via [FromJSONSchema]
//
// Builders perform structural validation only (unknown tags, malformed
// values). Semantic validation — min greater than max, empty option lists,
// unparseable format or validate patterns — is accepted here without
// complaint and is the consuming editor's concern.
package column

import "fmt"

// Type identifies the display/edit mode of a column. The empty Type means
// "infer from the underlying data".
type Type string

// Column display types.
const (
	TypeText      Type = "text"
	TypeNumber    Type = "number"
	TypeCheckbox  Type = "checkbox"
	TypeSelect    Type = "select"
	TypeList      Type = "list"
	TypeDateTime  Type = "datetime"
	TypeDate      Type = "date"
	TypeTime      Type = "time"
	TypeURL       Type = "url"
	TypeImage     Type = "image"
	TypeLineChart Type = "line_chart"
	TypeBarChart  Type = "bar_chart"
	TypeRange     Type = "range"
)

// Width is the display width class of a column. The empty Width means
// "size to fit contents".
type Width string

// Column display widths.
const (
	WidthSmall  Width = "small"
	WidthMedium Width = "medium"
	WidthLarge  Width = "large"
)

// Type option keys used inside [Config.TypeOptions]. These names are part
// of the wire contract with the rendering engine and must not change.
const (
	OptMinValue = "min_value"
	OptMaxValue = "max_value"
	OptMinChars = "min_chars"
	OptMaxChars = "max_chars"
	OptYMin     = "y_min"
	OptYMax     = "y_max"
	OptFormat   = "format"
	OptStep     = "step"
	OptValidate = "validate"
	OptOptions  = "options"
	OptTimezone = "timezone"
)

// Config describes the display and edit behavior of one grid column. It is
// a pure value: constructed fresh on each builder call, never mutated after
// return, and compared field by field. Consumers treat an absent field and
// a null field identically.
type Config struct {
	// Type selects the display/edit mode. Empty means infer from data.
	Type Type `json:"type,omitempty"`

	// Title overrides the column header text.
	Title string `json:"title,omitempty"`

	// Width is the display width class: small, medium, or large.
	Width Width `json:"width,omitempty"`

	// Hidden omits the column from output entirely.
	Hidden *bool `json:"hidden,omitempty"`

	// Help is a tooltip shown on the column header.
	Help string `json:"help,omitempty"`

	// Disabled turns off editing for this column.
	Disabled *bool `json:"disabled,omitempty"`

	// Required forces edited cells to hold a non-empty value.
	Required *bool `json:"required,omitempty"`

	// Default is the cell value used when a new row is created. Temporal
	// defaults are stored as ISO-8601 strings.
	Default Value `json:"default,omitzero"`

	// TypeOptions holds the type-specific settings under their wire names
	// (bounds, format string, step, validation pattern, option list,
	// timezone). Only keys relevant to Type are present; a present key may
	// hold a null value, which consumers treat the same as absence.
	TypeOptions map[string]Value `json:"type_options,omitempty"`
}

// boundKeys is a destination key pair for the generic min/max parameters.
type boundKeys struct {
	min string
	max string
}

// boundKeysByType maps a column type to the TypeOptions keys its generic
// min/max parameters land under. Types not listed use min_value/max_value.
var boundKeysByType = map[Type]boundKeys{
	TypeLineChart: {OptYMin, OptYMax},
	TypeBarChart:  {OptYMin, OptYMax},
	TypeText:      {OptMinChars, OptMaxChars},
	TypeURL:       {OptMinChars, OptMaxChars},
}

// boundKeysFor resolves the min/max destination keys for a column type.
func boundKeysFor(t Type) boundKeys {
	if bk, ok := boundKeysByType[t]; ok {
		return bk
	}
	return boundKeys{OptMinValue, OptMaxValue}
}

// optionKeysByType lists the TypeOptions keys each per-type builder emits.
// Membership in this map also defines the set of known type tags.
var optionKeysByType = map[Type][]string{
	TypeNumber:    {OptMinValue, OptMaxValue, OptFormat, OptStep},
	TypeText:      {OptMinChars, OptMaxChars, OptValidate},
	TypeURL:       {OptMinChars, OptMaxChars},
	TypeCheckbox:  {},
	TypeSelect:    {OptOptions},
	TypeList:      {},
	TypeDateTime:  {OptFormat, OptMinValue, OptMaxValue, OptStep, OptTimezone},
	TypeDate:      {OptFormat, OptMinValue, OptMaxValue},
	TypeTime:      {OptFormat, OptMinValue, OptMaxValue, OptStep},
	TypeImage:     {},
	TypeLineChart: {OptYMin, OptYMax},
	TypeBarChart:  {OptYMin, OptYMax},
	TypeRange:     {OptMinValue, OptMaxValue, OptFormat},
}

// allOptionKeys is the union of every known option key, allowed on columns
// with no declared type.
var allOptionKeys = []string{
	OptMinValue, OptMaxValue, OptMinChars, OptMaxChars, OptYMin, OptYMax,
	OptFormat, OptStep, OptValidate, OptOptions, OptTimezone,
}

// genericOptionKeys are the option keys the generic builder emits for every
// type, alongside the type's bound key pair.
var genericOptionKeys = []string{OptFormat, OptStep, OptValidate, OptOptions, OptTimezone}

// allowedOptionKeys returns the set of TypeOptions keys valid for t: the
// generic keys plus the bound key pair the remap table assigns to t. This
// accepts everything the builders can produce and rejects bound keys under
// the wrong pair (e.g. min_value on a text column). A column with no
// declared type accepts any known key, since the effective type is
// inferred downstream.
func allowedOptionKeys(t Type) []string {
	if t == "" {
		return allOptionKeys
	}
	bk := boundKeysFor(t)
	keys := make([]string, 0, len(genericOptionKeys)+2)
	keys = append(keys, bk.min, bk.max)
	return append(keys, genericOptionKeys...)
}

// checkType reports an error for a type tag outside the known set. The
// empty tag is valid (infer from data).
func checkType(t Type) error {
	if t == "" {
		return nil
	}
	if _, ok := optionKeysByType[t]; !ok {
		return fmt.Errorf("column config: unknown type %q", t)
	}
	return nil
}

// checkWidth reports an error for a width tag outside {small, medium,
// large}. The empty tag is valid (size to contents).
func checkWidth(w Width) error {
	switch w {
	case "", WidthSmall, WidthMedium, WidthLarge:
		return nil
	}
	return fmt.Errorf("column config: unknown width %q", w)
}
