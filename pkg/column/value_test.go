package column

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ZeroIsNull(t *testing.T) {
	var v Value
	assert.True(t, v.IsNull())
	assert.Equal(t, Null(), v)
	assert.Equal(t, KindNull, v.Kind())
}

func TestValue_ISORendering(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"datetime utc", DateTime(time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)), "2024-01-15T14:30:00Z"},
		{"datetime offset", DateTime(time.Date(2024, 1, 15, 14, 30, 0, 0, time.FixedZone("IST", 19800))), "2024-01-15T14:30:00+05:30"},
		{"datetime fractional", DateTime(time.Date(2024, 1, 15, 14, 30, 0, 123000000, time.UTC)), "2024-01-15T14:30:00.123Z"},
		{"date", Date(time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC)), "2024-01-15"},
		{"time", TimeOfDay(time.Date(2024, 1, 15, 8, 5, 9, 0, time.UTC)), "08:05:09"},
		{"time fractional", TimeOfDay(time.Date(2024, 1, 15, 8, 5, 9, 500000000, time.UTC)), "08:05:09.5"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			norm := tc.v.normalize()
			assert.Equal(t, String(tc.want), norm)
			// Normalizing twice is a no-op.
			assert.Equal(t, norm, norm.normalize())
		})
	}
}

func TestValue_NormalizeLeavesNonTemporalAlone(t *testing.T) {
	for _, v := range []Value{Null(), String("x"), Int(3), Float(2.5), Bool(true), List(Int(1))} {
		assert.Equal(t, v, v.normalize())
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null(), `null`},
		{String("hi"), `"hi"`},
		{Int(3), `3`},
		{Float(2.5), `2.5`},
		{Bool(false), `false`},
		{Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)), `"2024-01-15"`},
		{List(Int(1), String("b")), `[1,"b"]`},
	}
	for _, tc := range tests {
		out, err := json.Marshal(tc.v)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(out))
	}
}

func TestValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{`null`, Null()},
		{`"hi"`, String("hi")},
		{`42`, Int(42)},
		{`-7`, Int(-7)},
		{`2.5`, Float(2.5)},
		{`1e3`, Float(1000)},
		{`true`, Bool(true)},
		{`["a", 1, 2.5]`, List(String("a"), Int(1), Float(2.5))},
	}
	for _, tc := range tests {
		var v Value
		require.NoError(t, json.Unmarshal([]byte(tc.in), &v), "input %s", tc.in)
		assert.Equal(t, tc.want, v, "input %s", tc.in)
	}
}

func TestValue_UnmarshalRejectsObjects(t *testing.T) {
	var v Value
	err := json.Unmarshal([]byte(`{"nested": true}`), &v)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`[[1]]`), &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested")
}

func TestValue_Interface(t *testing.T) {
	assert.Nil(t, Null().Interface())
	assert.Equal(t, "x", String("x").Interface())
	assert.Equal(t, int64(5), Int(5).Interface())
	assert.Equal(t, 1.5, Float(1.5).Interface())
	assert.Equal(t, true, Bool(true).Interface())
	assert.Equal(t, []any{int64(1), "b"}, List(Int(1), String("b")).Interface())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "datetime", KindDateTime.String())
	assert.Equal(t, "list", KindList.String())
}
