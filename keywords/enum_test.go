package keywords_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jskema "github.com/reoring/jskema"
	"github.com/reoring/jskema/keywords"
)

func TestEnum_StructuralEquality(t *testing.T) {
	s := mustCompile(t, map[string]any{"enum": []any{
		uint64(1),
		map[string]any{"a": uint64(1), "b": "x"},
		[]any{uint64(1), uint64(2)},
		nil,
	}})

	assert.True(t, s.IsValid(1.0))
	assert.True(t, s.IsValid(json.Number("1")))
	assert.True(t, s.IsValid(map[string]any{"b": "x", "a": 1.0}))
	assert.True(t, s.IsValid([]any{uint64(1), uint64(2)}))
	assert.True(t, s.IsValid(nil))

	assert.False(t, s.IsValid([]any{uint64(2), uint64(1)}))
	assert.False(t, s.IsValid(true))
	assert.False(t, s.IsValid(map[string]any{"a": uint64(1)}))
}

func TestEnum_ErrorCarriesAllOptions(t *testing.T) {
	s := mustCompile(t, map[string]any{"enum": []any{uint64(1), "a", true}})
	es := s.Validate(uint64(2)).Collect()
	require.Len(t, es, 1)
	assert.Equal(t, jskema.EnumDetail{Options: []any{uint64(1), "a", true}}, es[0].Detail)
	assert.Equal(t, `2 is not one of [1,"a",true]`, es[0].Message())
	assert.Equal(t, `{enum: [1, "a", true]}`, s.String())
}

func TestEnum_Malformed(t *testing.T) {
	_, err := keywords.Compile(map[string]any{"enum": "a"})
	assert.ErrorIs(t, err, jskema.ErrMalformedSchema)
}

func TestEnum_SchemaMutationDoesNotLeak(t *testing.T) {
	opts := []any{"a"}
	s := mustCompile(t, map[string]any{"enum": opts})
	opts[0] = "b"
	assert.True(t, s.IsValid("a"))
	assert.False(t, s.IsValid("b"))
}

func TestConst(t *testing.T) {
	s := mustCompile(t, map[string]any{"const": map[string]any{"k": []any{uint64(1)}}})
	assert.True(t, s.IsValid(map[string]any{"k": []any{1.0}}))
	assert.False(t, s.IsValid(map[string]any{"k": []any{uint64(2)}}))

	e, ok := s.Validate("x").First()
	require.True(t, ok)
	assert.Equal(t, "const", e.Keyword)
	assert.Equal(t, `{"k":[1]} was expected`, e.Message())
	assert.Equal(t, `{const: {"k":[1]}}`, s.String())

	n := mustCompile(t, map[string]any{"const": nil})
	assert.True(t, n.IsValid(nil))
	assert.False(t, n.IsValid(false))
}
