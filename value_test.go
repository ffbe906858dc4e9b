package jskema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	jskema "github.com/reoring/jskema"
)

func TestTypeOf(t *testing.T) {
	assert.Equal(t, jskema.TypeNull, jskema.TypeOf(nil))
	assert.Equal(t, jskema.TypeBoolean, jskema.TypeOf(false))
	assert.Equal(t, jskema.TypeNumber, jskema.TypeOf(int64(-1)))
	assert.Equal(t, jskema.TypeNumber, jskema.TypeOf(1.5))
	assert.Equal(t, jskema.TypeString, jskema.TypeOf("x"))
	assert.Equal(t, jskema.TypeArray, jskema.TypeOf([]any{}))
	assert.Equal(t, jskema.TypeObject, jskema.TypeOf(map[string]any{}))
	assert.Equal(t, "", jskema.TypeOf(struct{}{}))
}

func TestStringLength_CountsCodePoints(t *testing.T) {
	assert.Equal(t, uint64(3), jskema.StringLength("héé"))
	assert.Equal(t, uint64(1), jskema.StringLength("😀"))
	assert.Equal(t, uint64(0), jskema.StringLength(""))
}

func TestEqual(t *testing.T) {
	assert.True(t, jskema.Equal(uint64(1), 1.0))
	assert.True(t, jskema.Equal(int64(-3), -3))
	assert.False(t, jskema.Equal(true, uint64(1)))
	assert.False(t, jskema.Equal(false, uint64(0)))
	assert.True(t, jskema.Equal(
		map[string]any{"a": []any{uint64(1), "x"}, "b": nil},
		map[string]any{"b": nil, "a": []any{1.0, "x"}},
	))
	assert.False(t, jskema.Equal([]any{uint64(1), uint64(2)}, []any{uint64(2), uint64(1)}))
	assert.False(t, jskema.Equal(map[string]any{"a": nil}, map[string]any{"b": nil}))
	assert.False(t, jskema.Equal("1", uint64(1)))
}

func TestCloneValue_Deep(t *testing.T) {
	orig := map[string]any{"a": []any{map[string]any{"b": "c"}}}
	c := jskema.CloneValue(orig).(map[string]any)
	c["a"].([]any)[0].(map[string]any)["b"] = "changed"
	assert.Equal(t, "c", orig["a"].([]any)[0].(map[string]any)["b"])
}
