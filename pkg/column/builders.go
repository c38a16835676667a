package column

import (
	"fmt"
	"time"
)

// Options holds every parameter the generic [New] builder accepts. All
// fields are optional; the zero Options builds an empty Config that lets
// the consumer infer everything from the underlying data.
//
// Min and Max are generic bounds: where they land in TypeOptions depends on
// Type (y_min/y_max for chart types, min_chars/max_chars for text and url,
// min_value/max_value otherwise). The per-type builders name their bound
// parameters directly and skip this remapping.
type Options struct {
	Type     Type
	Title    string
	Width    Width
	Hidden   *bool
	Help     string
	Disabled *bool
	Required *bool

	// Default is the value placed in new-row cells. String, numeric,
	// boolean, or temporal; temporal values are stored as ISO-8601 strings.
	Default Value

	// Min and Max bound the editable value. Numeric, string, or temporal.
	Min Value
	Max Value

	Format   string
	Step     *float64
	Validate string
	Options  []Value
	Timezone string
}

// New builds a Config from the full generic parameter set. It normalizes
// temporal values, remaps Min/Max onto the type-appropriate option keys,
// and rejects unknown type or width tags. It performs no semantic checks:
// Min greater than Max is accepted and left to the consuming editor.
func New(opts Options) (Config, error) {
	if err := checkType(opts.Type); err != nil {
		return Config{}, err
	}
	if err := checkWidth(opts.Width); err != nil {
		return Config{}, err
	}
	if err := checkScalar("default", opts.Default, KindString, KindInt, KindFloat, KindBool); err != nil {
		return Config{}, err
	}
	if err := checkScalar("min", opts.Min, KindString, KindInt, KindFloat); err != nil {
		return Config{}, err
	}
	if err := checkScalar("max", opts.Max, KindString, KindInt, KindFloat); err != nil {
		return Config{}, err
	}
	if err := checkOptionList(opts.Options); err != nil {
		return Config{}, err
	}

	bk := boundKeysFor(opts.Type)
	return Config{
		Type:     opts.Type,
		Title:    opts.Title,
		Width:    opts.Width,
		Hidden:   opts.Hidden,
		Help:     opts.Help,
		Disabled: opts.Disabled,
		Required: opts.Required,
		Default:  opts.Default.normalize(),
		TypeOptions: map[string]Value{
			bk.min:      opts.Min.normalize(),
			bk.max:      opts.Max.normalize(),
			OptFormat:   optString(opts.Format),
			OptStep:     optFloat(opts.Step),
			OptValidate: optString(opts.Validate),
			OptOptions:  optList(opts.Options),
			OptTimezone: optString(opts.Timezone),
		},
	}, nil
}

// checkScalar rejects a Value whose kind is outside the allowed set.
// Null and the temporal kinds are always allowed; temporal values are
// normalized to strings before they reach the record.
func checkScalar(param string, v Value, allowed ...Kind) error {
	if v.IsNull() || v.isTemporal() {
		return nil
	}
	for _, k := range allowed {
		if v.Kind() == k {
			return nil
		}
	}
	return fmt.Errorf("column config: %s: unsupported value kind %s", param, v.Kind())
}

// checkOptionList rejects option entries that are not plain scalars.
func checkOptionList(opts []Value) error {
	for i, o := range opts {
		switch o.Kind() {
		case KindString, KindInt, KindFloat:
		default:
			return fmt.Errorf("column config: options[%d]: unsupported value kind %s", i, o.Kind())
		}
	}
	return nil
}

// NumberOptions parameterizes [NumberColumn].
type NumberOptions struct {
	Title    string
	Width    Width
	Hidden   *bool
	Help     string
	Disabled *bool
	Required *bool
	Default  *float64

	// MinValue and MaxValue bound what the user can enter.
	MinValue *float64
	MaxValue *float64

	// Format is a printf-style format string for display.
	Format string

	// Step is the value granularity the editor offers.
	Step *float64
}

// NumberColumn builds the configuration for a numeric column. Editing uses
// a numeric input widget.
func NumberColumn(opts NumberOptions) (Config, error) {
	if err := checkWidth(opts.Width); err != nil {
		return Config{}, err
	}
	return Config{
		Type:     TypeNumber,
		Title:    opts.Title,
		Width:    opts.Width,
		Hidden:   opts.Hidden,
		Help:     opts.Help,
		Disabled: opts.Disabled,
		Required: opts.Required,
		Default:  optFloat(opts.Default),
		TypeOptions: map[string]Value{
			OptMinValue: optFloat(opts.MinValue),
			OptMaxValue: optFloat(opts.MaxValue),
			OptFormat:   optString(opts.Format),
			OptStep:     optFloat(opts.Step),
		},
	}, nil
}

// TextOptions parameterizes [TextColumn].
type TextOptions struct {
	Title    string
	Width    Width
	Hidden   *bool
	Help     string
	Disabled *bool
	Required *bool
	Default  *string

	// MaxChars caps the number of characters the user can enter.
	MaxChars *int

	// Validate is a regular expression edited values must match.
	Validate string
}

// TextColumn builds the configuration for a free-text column. Editing uses
// a text input widget.
func TextColumn(opts TextOptions) (Config, error) {
	if err := checkWidth(opts.Width); err != nil {
		return Config{}, err
	}
	return Config{
		Type:     TypeText,
		Title:    opts.Title,
		Width:    opts.Width,
		Hidden:   opts.Hidden,
		Help:     opts.Help,
		Disabled: opts.Disabled,
		Required: opts.Required,
		Default:  optStringPtr(opts.Default),
		TypeOptions: map[string]Value{
			OptMaxChars: optInt(opts.MaxChars),
			OptValidate: optString(opts.Validate),
		},
	}, nil
}

// URLOptions parameterizes [URLColumn].
type URLOptions struct {
	Title    string
	Width    Width
	Hidden   *bool
	Help     string
	Disabled *bool
	Required *bool
	Default  *string
	MaxChars *int
}

// URLColumn builds the configuration for a column of clickable URLs.
func URLColumn(opts URLOptions) (Config, error) {
	if err := checkWidth(opts.Width); err != nil {
		return Config{}, err
	}
	return Config{
		Type:     TypeURL,
		Title:    opts.Title,
		Width:    opts.Width,
		Hidden:   opts.Hidden,
		Help:     opts.Help,
		Disabled: opts.Disabled,
		Required: opts.Required,
		Default:  optStringPtr(opts.Default),
		TypeOptions: map[string]Value{
			OptMaxChars: optInt(opts.MaxChars),
		},
	}, nil
}

// CheckboxOptions parameterizes [CheckboxColumn].
type CheckboxOptions struct {
	Title    string
	Width    Width
	Hidden   *bool
	Help     string
	Disabled *bool
	Required *bool
	Default  *bool
}

// CheckboxColumn builds the configuration for a boolean column rendered as
// checkboxes.
func CheckboxColumn(opts CheckboxOptions) (Config, error) {
	if err := checkWidth(opts.Width); err != nil {
		return Config{}, err
	}
	return Config{
		Type:     TypeCheckbox,
		Title:    opts.Title,
		Width:    opts.Width,
		Hidden:   opts.Hidden,
		Help:     opts.Help,
		Disabled: opts.Disabled,
		Required: opts.Required,
		Default:  optBool(opts.Default),
	}, nil
}

// SelectOptions parameterizes [SelectColumn].
type SelectOptions struct {
	Title    string
	Width    Width
	Hidden   *bool
	Help     string
	Disabled *bool
	Required *bool

	// Default is the preselected option: string, int, or float.
	Default Value

	// Options lists the values to choose from. When empty, the consumer
	// derives options from the underlying categorical data.
	Options []Value
}

// SelectColumn builds the configuration for a categorical column edited
// with a select box.
func SelectColumn(opts SelectOptions) (Config, error) {
	if err := checkWidth(opts.Width); err != nil {
		return Config{}, err
	}
	if err := checkScalar("default", opts.Default, KindString, KindInt, KindFloat); err != nil {
		return Config{}, err
	}
	if err := checkOptionList(opts.Options); err != nil {
		return Config{}, err
	}
	return Config{
		Type:     TypeSelect,
		Title:    opts.Title,
		Width:    opts.Width,
		Hidden:   opts.Hidden,
		Help:     opts.Help,
		Disabled: opts.Disabled,
		Required: opts.Required,
		Default:  opts.Default.normalize(),
		TypeOptions: map[string]Value{
			OptOptions: optList(opts.Options),
		},
	}, nil
}

// ChartOptions parameterizes [BarChartColumn] and [LineChartColumn]. Chart
// columns are read-only: they carry no disabled, required, or default.
type ChartOptions struct {
	Title  string
	Width  Width
	Hidden *bool
	Help   string

	// YMin and YMax fix the y-axis. When unset, scales are normalized per
	// column by the renderer.
	YMin *float64
	YMax *float64
}

// BarChartColumn builds the configuration for a column that draws each
// cell's list of numbers as a bar chart.
func BarChartColumn(opts ChartOptions) (Config, error) {
	return chartColumn(TypeBarChart, opts)
}

// LineChartColumn builds the configuration for a column that draws each
// cell's list of numbers as a line chart.
func LineChartColumn(opts ChartOptions) (Config, error) {
	return chartColumn(TypeLineChart, opts)
}

func chartColumn(t Type, opts ChartOptions) (Config, error) {
	if err := checkWidth(opts.Width); err != nil {
		return Config{}, err
	}
	return Config{
		Type:   t,
		Title:  opts.Title,
		Width:  opts.Width,
		Hidden: opts.Hidden,
		Help:   opts.Help,
		TypeOptions: map[string]Value{
			OptYMin: optFloat(opts.YMin),
			OptYMax: optFloat(opts.YMax),
		},
	}, nil
}

// DisplayOptions parameterizes the read-only [ImageColumn] and
// [ListColumn] builders, which take no type-specific settings.
type DisplayOptions struct {
	Title  string
	Width  Width
	Hidden *bool
	Help   string
}

// ImageColumn builds the configuration for a read-only column rendering
// cell values as images.
func ImageColumn(opts DisplayOptions) (Config, error) {
	return displayColumn(TypeImage, opts)
}

// ListColumn builds the configuration for a read-only column rendering
// list values as tags.
func ListColumn(opts DisplayOptions) (Config, error) {
	return displayColumn(TypeList, opts)
}

func displayColumn(t Type, opts DisplayOptions) (Config, error) {
	if err := checkWidth(opts.Width); err != nil {
		return Config{}, err
	}
	return Config{
		Type:   t,
		Title:  opts.Title,
		Width:  opts.Width,
		Hidden: opts.Hidden,
		Help:   opts.Help,
	}, nil
}

// DateTimeOptions parameterizes [DateTimeColumn].
type DateTimeOptions struct {
	Title    string
	Width    Width
	Hidden   *bool
	Help     string
	Disabled *bool
	Required *bool

	// Default, MinValue, and MaxValue are stored as ISO-8601 timestamps,
	// keeping the offset of each value's location.
	Default  *time.Time
	MinValue *time.Time
	MaxValue *time.Time

	// Format controls display formatting in the renderer.
	Format string

	// Step is the entry granularity in seconds.
	Step *float64

	// Timezone overrides the timezone inferred from the data.
	Timezone string
}

// DateTimeColumn builds the configuration for a datetime column. Editing
// uses a datetime picker widget.
func DateTimeColumn(opts DateTimeOptions) (Config, error) {
	if err := checkWidth(opts.Width); err != nil {
		return Config{}, err
	}
	return Config{
		Type:     TypeDateTime,
		Title:    opts.Title,
		Width:    opts.Width,
		Hidden:   opts.Hidden,
		Help:     opts.Help,
		Disabled: opts.Disabled,
		Required: opts.Required,
		Default:  optDateTime(opts.Default),
		TypeOptions: map[string]Value{
			OptFormat:   optString(opts.Format),
			OptMinValue: optDateTime(opts.MinValue),
			OptMaxValue: optDateTime(opts.MaxValue),
			OptStep:     optFloat(opts.Step),
			OptTimezone: optString(opts.Timezone),
		},
	}, nil
}

// TimeOptions parameterizes [TimeColumn].
type TimeOptions struct {
	Title    string
	Width    Width
	Hidden   *bool
	Help     string
	Disabled *bool
	Required *bool

	// Default, MinValue, and MaxValue are wall-clock times; only the clock
	// part of each value is stored, as an ISO-8601 time string.
	Default  *time.Time
	MinValue *time.Time
	MaxValue *time.Time

	Format string

	// Step is the entry granularity in seconds.
	Step *float64
}

// TimeColumn builds the configuration for a time-of-day column. Editing
// uses a time picker widget.
func TimeColumn(opts TimeOptions) (Config, error) {
	if err := checkWidth(opts.Width); err != nil {
		return Config{}, err
	}
	return Config{
		Type:     TypeTime,
		Title:    opts.Title,
		Width:    opts.Width,
		Hidden:   opts.Hidden,
		Help:     opts.Help,
		Disabled: opts.Disabled,
		Required: opts.Required,
		Default:  optTimeOfDay(opts.Default),
		TypeOptions: map[string]Value{
			OptFormat:   optString(opts.Format),
			OptMinValue: optTimeOfDay(opts.MinValue),
			OptMaxValue: optTimeOfDay(opts.MaxValue),
			OptStep:     optFloat(opts.Step),
		},
	}, nil
}

// DateOptions parameterizes [DateColumn].
type DateOptions struct {
	Title    string
	Width    Width
	Hidden   *bool
	Help     string
	Disabled *bool
	Required *bool

	// Default, MinValue, and MaxValue are calendar dates; only the date
	// part of each value is stored, as an ISO-8601 date string.
	Default  *time.Time
	MinValue *time.Time
	MaxValue *time.Time

	Format string
}

// DateColumn builds the configuration for a date column. Editing uses a
// date picker widget.
func DateColumn(opts DateOptions) (Config, error) {
	if err := checkWidth(opts.Width); err != nil {
		return Config{}, err
	}
	return Config{
		Type:     TypeDate,
		Title:    opts.Title,
		Width:    opts.Width,
		Hidden:   opts.Hidden,
		Help:     opts.Help,
		Disabled: opts.Disabled,
		Required: opts.Required,
		Default:  optDate(opts.Default),
		TypeOptions: map[string]Value{
			OptFormat:   optString(opts.Format),
			OptMinValue: optDate(opts.MinValue),
			OptMaxValue: optDate(opts.MaxValue),
		},
	}, nil
}

// RangeOptions parameterizes [RangeColumn].
type RangeOptions struct {
	Title    string
	Width    Width
	Hidden   *bool
	Help     string
	Disabled *bool
	Required *bool
	Default  *float64

	// MinValue and MaxValue bound the range bar. The renderer defaults to
	// 0 and 1 when unset.
	MinValue *float64
	MaxValue *float64

	// Format is a printf-style format string for the number shown next to
	// the bar.
	Format string
}

// RangeColumn builds the configuration for a read-only column visualizing
// a numeric value as a progress-bar-like element.
func RangeColumn(opts RangeOptions) (Config, error) {
	if err := checkWidth(opts.Width); err != nil {
		return Config{}, err
	}
	return Config{
		Type:     TypeRange,
		Title:    opts.Title,
		Width:    opts.Width,
		Hidden:   opts.Hidden,
		Help:     opts.Help,
		Disabled: opts.Disabled,
		Required: opts.Required,
		Default:  optFloat(opts.Default),
		TypeOptions: map[string]Value{
			OptMinValue: optFloat(opts.MinValue),
			OptMaxValue: optFloat(opts.MaxValue),
			OptFormat:   optString(opts.Format),
		},
	}, nil
}

// Helpers lifting optional native parameters into Values. The empty string
// and nil pointers lift to null.

func optString(s string) Value {
	if s == "" {
		return Null()
	}
	return String(s)
}

func optStringPtr(p *string) Value {
	if p == nil {
		return Null()
	}
	return String(*p)
}

func optFloat(p *float64) Value {
	if p == nil {
		return Null()
	}
	return Float(*p)
}

func optInt(p *int) Value {
	if p == nil {
		return Null()
	}
	return Int(int64(*p))
}

func optBool(p *bool) Value {
	if p == nil {
		return Null()
	}
	return Bool(*p)
}

func optList(vs []Value) Value {
	if vs == nil {
		return Null()
	}
	return List(vs...)
}

func optDateTime(p *time.Time) Value {
	if p == nil {
		return Null()
	}
	return DateTime(*p).normalize()
}

func optTimeOfDay(p *time.Time) Value {
	if p == nil {
		return Null()
	}
	return TimeOfDay(*p).normalize()
}

func optDate(p *time.Time) Value {
	if p == nil {
		return Null()
	}
	return Date(*p).normalize()
}
