// Package middleware holds the framework-independent half of the HTTP
// adapters: request body decoding, validation against a compiled schema and
// the JSON error payload. Framework bindings live in middleware/gin and
// middleware/echo.
package middleware

import (
	"context"
	"io"
	"net/http"

	jskema "github.com/reoring/jskema"
	"github.com/reoring/jskema/source"
)

// Options controls request validation.
type Options struct {
	Decode    source.Options
	MaxErrors int // 0 means report every error
}

// DefaultOptions returns a recommended default for HTTP JSON boundaries:
// duplicate keys are errors, nesting is bounded and at most 20 errors are
// reported.
func DefaultOptions() Options {
	return Options{
		Decode:    source.Options{OnDuplicateKey: source.DuplicateError, MaxDepth: 128},
		MaxErrors: 20,
	}
}

type ctxKeyInstance struct{}

// ContextWithInstance attaches the validated instance to ctx.
func ContextWithInstance(ctx context.Context, instance any) context.Context {
	return context.WithValue(ctx, ctxKeyInstance{}, instanceBox{instance})
}

// InstanceFromContext retrieves the validated instance from ctx.
func InstanceFromContext(ctx context.Context) (any, bool) {
	v, ok := ctx.Value(ctxKeyInstance{}).(instanceBox)
	return v.v, ok
}

// instanceBox lets a nil instance (a JSON null body) be stored and found.
type instanceBox struct{ v any }

// ErrorItem is the JSON shape of one validation error.
type ErrorItem struct {
	Keyword string         `json:"keyword"`
	Pointer string         `json:"pointer"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

// ErrorPayload shapes validation errors for JSON responses.
func ErrorPayload(es jskema.Errors) map[string]any {
	items := make([]ErrorItem, len(es))
	for i, e := range es {
		items[i] = ErrorItem{Keyword: e.Keyword, Pointer: e.Pointer(), Message: e.Message()}
		if e.Detail != nil {
			items[i].Params = e.Detail.Params()
		}
	}
	return map[string]any{"errors": items}
}

// Result is the outcome of validating one request body.
type Result struct {
	Instance any
	Status   int            // 0 when the body is valid
	Payload  map[string]any // response body when Status != 0
}

// Validate decodes body and checks it against s. Undecodable bodies yield
// 400; bodies violating the schema yield 422 with at most opts.MaxErrors
// errors.
func Validate(s *jskema.Schema, body io.Reader, opts Options) Result {
	inst, err := source.DecodeJSON(body, opts.Decode)
	if err != nil {
		return Result{Status: http.StatusBadRequest, Payload: map[string]any{"error": err.Error()}}
	}
	if s.IsValid(inst) {
		return Result{Instance: inst}
	}
	es := s.Validate(inst).CollectN(opts.MaxErrors)
	return Result{Instance: inst, Status: http.StatusUnprocessableEntity, Payload: ErrorPayload(es)}
}

// Store records the valid instance on the request context.
func Store(r *http.Request, instance any) *http.Request {
	return r.WithContext(ContextWithInstance(r.Context(), instance))
}
