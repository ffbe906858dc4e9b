package middleware_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jskema "github.com/reoring/jskema"
	"github.com/reoring/jskema/keywords"
	"github.com/reoring/jskema/middleware"
)

func TestValidate(t *testing.T) {
	s, err := keywords.Compile(map[string]any{"required": []any{"a", "b"}})
	require.NoError(t, err)

	res := middleware.Validate(s, strings.NewReader(`{"a":1,"b":2}`), middleware.DefaultOptions())
	assert.Zero(t, res.Status)
	assert.Equal(t, map[string]any{"a": uint64(1), "b": uint64(2)}, res.Instance)

	res = middleware.Validate(s, strings.NewReader(`{}`), middleware.DefaultOptions())
	assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
	items := res.Payload["errors"].([]middleware.ErrorItem)
	require.Len(t, items, 1)
	assert.Equal(t, middleware.ErrorItem{
		Keyword: "required",
		Pointer: "/",
		Message: "'a' is a required property",
		Params:  map[string]any{"property": "a"},
	}, items[0])

	res = middleware.Validate(s, strings.NewReader(`[[[]]]`), middleware.Options{Decode: middleware.DefaultOptions().Decode, MaxErrors: 0})
	assert.Zero(t, res.Status)
}

func TestValidate_DepthLimit(t *testing.T) {
	s, err := keywords.Compile(true)
	require.NoError(t, err)
	opt := middleware.DefaultOptions()
	opt.Decode.MaxDepth = 2
	res := middleware.Validate(s, strings.NewReader(`[[[]]]`), opt)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

func TestInstanceContext(t *testing.T) {
	_, ok := middleware.InstanceFromContext(context.Background())
	assert.False(t, ok)

	ctx := middleware.ContextWithInstance(context.Background(), nil)
	v, ok := middleware.InstanceFromContext(ctx)
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestErrorPayload_NoDetail(t *testing.T) {
	p := middleware.ErrorPayload(jskema.Errors{{Keyword: "x"}})
	items := p["errors"].([]middleware.ErrorItem)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Params)
	assert.Equal(t, "validation failed", items[0].Message)
}
