package jskema_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jskema "github.com/reoring/jskema"
)

func TestParseNumber_Classification(t *testing.T) {
	cases := []struct {
		in   string
		kind jskema.NumberKind
		str  string
	}{
		{"0", jskema.NumberUint, "0"},
		{"18446744073709551615", jskema.NumberUint, "18446744073709551615"},
		{"-1", jskema.NumberInt, "-1"},
		{"-9223372036854775808", jskema.NumberInt, "-9223372036854775808"},
		{"18446744073709551616", jskema.NumberFloat, "1.8446744073709552e+19"},
		{"1.0", jskema.NumberFloat, "1"},
		{"1e3", jskema.NumberFloat, "1000"},
		{"-0.5", jskema.NumberFloat, "-0.5"},
	}
	for _, c := range cases {
		n, err := jskema.ParseNumber(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.kind, n.Kind(), c.in)
		assert.Equal(t, c.str, n.String(), c.in)
	}

	_, err := jskema.ParseNumber("abc")
	assert.ErrorIs(t, err, jskema.ErrNotANumber)
}

func TestNumberOf_GoKinds(t *testing.T) {
	cases := []struct {
		in   any
		kind jskema.NumberKind
	}{
		{int(3), jskema.NumberUint},
		{int8(-3), jskema.NumberInt},
		{int64(-1), jskema.NumberInt},
		{int64(5), jskema.NumberUint},
		{uint8(7), jskema.NumberUint},
		{float32(1.5), jskema.NumberFloat},
		{2.0, jskema.NumberFloat},
		{json.Number("42"), jskema.NumberUint},
		{json.Number("-4.2"), jskema.NumberFloat},
		{jskema.Int(-9), jskema.NumberInt},
	}
	for _, c := range cases {
		n, ok := jskema.NumberOf(c.in)
		require.True(t, ok, "%#v", c.in)
		assert.Equal(t, c.kind, n.Kind(), "%#v", c.in)
	}

	for _, v := range []any{true, "1", nil, []any{}, json.Number("x")} {
		_, ok := jskema.NumberOf(v)
		assert.False(t, ok, "%#v", v)
	}
}

func TestNumber_CmpNoFloatRounding(t *testing.T) {
	const p54 = uint64(1) << 54
	a := jskema.Uint(p54 + 1)
	b := jskema.Uint(p54)
	c, ok := a.Cmp(b)
	require.True(t, ok)
	assert.Equal(t, 1, c)

	c, ok = jskema.Int(-int64(p54) - 1).Cmp(jskema.Int(-int64(p54)))
	require.True(t, ok)
	assert.Equal(t, -1, c)

	// float64(2^54+1) rounds to 2^54, but the float literal is exactly 2^54.
	c, ok = a.Cmp(jskema.Float(float64(p54)))
	require.True(t, ok)
	assert.Equal(t, 1, c)

	c, ok = jskema.Uint(math.MaxUint64).Cmp(jskema.Float(0x1p64))
	require.True(t, ok)
	assert.Equal(t, -1, c)
}

func TestNumber_EqualAcrossKinds(t *testing.T) {
	assert.True(t, jskema.Uint(1).Equal(jskema.Float(1.0)))
	assert.True(t, jskema.Int(-2).Equal(jskema.Float(-2)))
	assert.False(t, jskema.Uint(1).Equal(jskema.Float(1.5)))
	assert.False(t, jskema.Float(math.NaN()).Equal(jskema.Float(math.NaN())))
}

func TestNumber_Accessors(t *testing.T) {
	n := jskema.Uint(math.MaxUint64)
	_, ok := n.Int64()
	assert.False(t, ok)
	u, ok := n.Uint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), u)
	assert.Equal(t, uint64(math.MaxUint64), n.Value())

	assert.True(t, jskema.Float(3).IsInteger())
	assert.False(t, jskema.Float(3.5).IsInteger())
	assert.False(t, jskema.Float(math.Inf(1)).IsInteger())
	assert.Equal(t, int64(-7), jskema.Int(-7).Value())
	assert.Equal(t, "float", jskema.NumberFloat.String())
}

func TestNumber_MarshalJSON(t *testing.T) {
	b, err := json.Marshal([]jskema.Number{jskema.Uint(math.MaxUint64), jskema.Int(-3), jskema.Float(0.25)})
	require.NoError(t, err)
	assert.Equal(t, `[18446744073709551615,-3,0.25]`, string(b))

	_, err = json.Marshal(jskema.Float(math.NaN()))
	assert.Error(t, err)
}
