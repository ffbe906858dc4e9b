package keywords_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jskema "github.com/reoring/jskema"
	"github.com/reoring/jskema/keywords"
	"github.com/reoring/jskema/source"
)

func TestScenarios(t *testing.T) {
	cases := []struct {
		name     string
		schema   string
		instance string
		valid    bool
		errors   int
	}{
		{"maxItems over", `{"maxItems": 2}`, `[1,2,3]`, false, 1},
		{"minLength short", `{"minLength": 3}`, `"ab"`, false, 1},
		{"minLength exact", `{"minLength": 3}`, `"abc"`, true, 0},
		{"required missing b", `{"required": ["a","b"]}`, `{"a":1}`, false, 1},
		{"enum miss", `{"enum": [1, "a", true]}`, `2`, false, 1},
		{"enum int", `{"enum": [1, "a", true]}`, `1`, true, 0},
		{"enum float", `{"enum": [1, "a", true]}`, `1.0`, true, 0},
		{"not two items", `{"not": {"maxItems": 1}}`, `[1,2]`, true, 0},
		{"not one item", `{"not": {"maxItems": 1}}`, `[1]`, false, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc, err := source.JSONBytes([]byte(c.schema), source.Options{})
			require.NoError(t, err)
			inst, err := source.JSONBytes([]byte(c.instance), source.Options{})
			require.NoError(t, err)

			s := mustCompile(t, doc)
			assert.Equal(t, c.valid, s.IsValid(inst))
			assert.Len(t, s.Validate(inst).Collect(), c.errors)
		})
	}

	doc, _ := source.JSONBytes([]byte(`{"required": ["a","b"]}`), source.Options{})
	e, ok := mustCompile(t, doc).Validate(map[string]any{"a": uint64(1)}).First()
	require.True(t, ok)
	assert.Equal(t, jskema.RequiredDetail{Property: "b"}, e.Detail)
}

func TestDefault_AnnotationsAndUnknownPolicy(t *testing.T) {
	doc := map[string]any{
		"$schema":     "https://json-schema.org/draft/2020-12/schema",
		"title":       "T",
		"description": "d",
		"default":     uint64(1),
		"maxLength":   uint64(1),
	}
	s, err := keywords.Compile(doc, jskema.WithUnknownPolicy(jskema.UnknownStrict))
	require.NoError(t, err)
	assert.Len(t, s.Validators(), 1)

	_, err = keywords.Compile(map[string]any{"pattern": "^a"}, jskema.WithUnknownPolicy(jskema.UnknownStrict))
	assert.ErrorIs(t, err, jskema.ErrUnknownKeyword)

	s, err = keywords.Compile(map[string]any{"pattern": "^a"})
	require.NoError(t, err)
	assert.True(t, s.IsValid("b"))
}

func TestDefault_Keywords(t *testing.T) {
	kws := keywords.Default().Keywords()
	for _, kw := range []string{"maxItems", "minItems", "maxLength", "minLength", "maxProperties", "minProperties",
		"required", "enum", "const", "minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum", "not", "properties"} {
		assert.Contains(t, kws, kw)
	}
}

func TestSchema_ConcurrentUse(t *testing.T) {
	s := mustCompile(t, map[string]any{
		"properties": map[string]any{
			"n":    map[string]any{"exclusiveMinimum": p54},
			"tags": map[string]any{"maxItems": uint64(2)},
		},
		"required": []any{"n"},
	})
	good := map[string]any{"n": p54 + 1, "tags": []any{"a"}}
	bad := map[string]any{"n": p54, "tags": []any{"a", "b", "c"}}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.True(t, s.IsValid(good))
				assert.Len(t, s.Validate(bad).Collect(), 2)
			}
		}()
	}
	wg.Wait()
}

func TestSchema_SuccessPathDoesNotAllocate(t *testing.T) {
	s := mustCompile(t, map[string]any{
		"properties": map[string]any{
			"name": map[string]any{"minLength": uint64(1), "maxLength": uint64(10)},
			"age":  map[string]any{"minimum": uint64(0)},
		},
		"required": []any{"name"},
		"not":      map[string]any{"required": []any{"banned"}},
	})
	inst := map[string]any{"name": "ada", "age": uint64(36)}
	require.True(t, s.IsValid(inst))

	allocs := testing.AllocsPerRun(100, func() {
		_ = s.IsValid(inst)
		_ = s.Validate(inst)
	})
	assert.Zero(t, allocs)
}

func TestSchema_Check(t *testing.T) {
	s := mustCompile(t, map[string]any{"minItems": uint64(1), "maxItems": uint64(2)})
	assert.NoError(t, s.Check([]any{"x"}))

	err := s.Check([]any{})
	es, ok := jskema.AsErrors(err)
	require.True(t, ok)
	require.Len(t, es, 1)
	assert.Equal(t, "minItems", es[0].Keyword)
}
