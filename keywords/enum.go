package keywords

import (
	"strings"

	json "github.com/goccy/go-json"

	jskema "github.com/reoring/jskema"
)

// enumValidator accepts instances structurally equal to one of its options.
type enumValidator struct {
	options any   // the fragment as written, for error rendering
	items   []any // cloned candidates
	path    jskema.InstancePath
}

func compileEnum(_ map[string]any, fragment any, ctx *jskema.Context) (jskema.Validator, bool, error) {
	items, ok := fragment.([]any)
	if !ok {
		return nil, true, ctx.SchemaError("enum", "expected an array")
	}
	cloned, _ := jskema.CloneValue(items).([]any)
	return &enumValidator{options: jskema.CloneValue(fragment), items: cloned, path: ctx.Path()}, true, nil
}

func (v *enumValidator) IsValid(instance any) bool {
	for _, item := range v.items {
		if jskema.Equal(instance, item) {
			return true
		}
	}
	return false
}

func (v *enumValidator) Validate(instance any) jskema.ErrorSeq {
	if v.IsValid(instance) {
		return jskema.NoErrors()
	}
	return jskema.OneError(func() jskema.ValidationError {
		opts, _ := jskema.CloneValue(v.options).([]any)
		return jskema.ValidationError{
			Keyword:      "enum",
			InstancePath: v.path.Clone(),
			Instance:     jskema.CloneValue(instance),
			Detail:       jskema.EnumDetail{Options: opts},
		}
	})
}

func (v *enumValidator) String() string {
	parts := make([]string, len(v.items))
	for i, item := range v.items {
		parts[i] = render(item)
	}
	return "enum: [" + strings.Join(parts, ", ") + "]"
}

// constValidator accepts only instances equal to one value.
type constValidator struct {
	expected any
	path     jskema.InstancePath
}

func compileConst(_ map[string]any, fragment any, ctx *jskema.Context) (jskema.Validator, bool, error) {
	return &constValidator{expected: jskema.CloneValue(fragment), path: ctx.Path()}, true, nil
}

func (v *constValidator) IsValid(instance any) bool { return jskema.Equal(instance, v.expected) }

func (v *constValidator) Validate(instance any) jskema.ErrorSeq {
	if v.IsValid(instance) {
		return jskema.NoErrors()
	}
	return jskema.OneError(func() jskema.ValidationError {
		return jskema.ValidationError{
			Keyword:      "const",
			InstancePath: v.path.Clone(),
			Instance:     jskema.CloneValue(instance),
			Detail:       jskema.ConstDetail{Expected: jskema.CloneValue(v.expected)},
		}
	})
}

func (v *constValidator) String() string { return "const: " + render(v.expected) }

// render prints a value-model value as compact JSON.
func render(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "<unrenderable>"
	}
	return string(b)
}
