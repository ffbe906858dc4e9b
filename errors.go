package jskema

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/jskema/i18n"
)

// ValidationError records one violation: the keyword that rejected the
// instance, where in the instance it happened, a copy of the offending value,
// and keyword-specific detail. It carries enough to render a message without
// walking the validator tree again.
type ValidationError struct {
	Keyword      string
	InstancePath InstancePath
	Instance     any
	Detail       Detail
}

// Pointer returns the instance location as a JSON Pointer.
func (e ValidationError) Pointer() string { return e.InstancePath.Pointer() }

// Message renders the violation through the current i18n translator.
func (e ValidationError) Message() string {
	data := map[string]string{"instance": renderValue(e.Instance)}
	if e.Detail != nil {
		for k, v := range e.Detail.Params() {
			data[k] = renderParam(v)
		}
	}
	return i18n.T(e.Keyword, data)
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Keyword, e.Pointer(), e.Message())
}

// Errors is a collection of validation errors that implements error.
type Errors []ValidationError

// Error summarizes the first few errors.
func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(es), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", es[i].Keyword, es[i].Pointer())
	}
	if len(es) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(es))
	}
	return b.String()
}

// AsErrors extracts Errors from err using errors.As.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}

// Compile-time failures.
var (
	// ErrMalformedSchema reports a keyword whose value has the wrong shape.
	ErrMalformedSchema = errors.New("jskema: malformed schema")
	// ErrUnknownKeyword reports a keyword no compiler recognizes under
	// UnknownStrict.
	ErrUnknownKeyword = errors.New("jskema: unknown keyword")
)

// SchemaError is returned when a schema document cannot be compiled. It
// aborts compilation of the whole document.
type SchemaError struct {
	Keyword  string
	Location string // JSON Pointer into the schema document.
	Reason   string
	Err      error // ErrMalformedSchema or ErrUnknownKeyword.
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("jskema: keyword %q at %s", e.Keyword, e.Location)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *SchemaError) Unwrap() error { return e.Err }

// renderParam renders strings verbatim and everything else as JSON.
func renderParam(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return renderValue(v)
}

// renderValue renders a value-model value as compact JSON for messages.
func renderValue(v any) string {
	if n, ok := v.(Number); ok {
		return n.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
