package keywords

import (
	"strings"

	jskema "github.com/reoring/jskema"
)

// requiredValidator checks property presence; values and their types are
// irrelevant.
type requiredValidator struct {
	required []string
	path     jskema.InstancePath
}

func compileRequired(_ map[string]any, fragment any, ctx *jskema.Context) (jskema.Validator, bool, error) {
	var names []string
	switch t := fragment.(type) {
	case []any:
		names = make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, true, ctx.SchemaError("required", "expected an array of strings")
			}
			names = append(names, s)
		}
	case []string:
		names = append([]string(nil), t...)
	default:
		return nil, true, ctx.SchemaError("required", "expected an array of strings")
	}
	return &requiredValidator{required: names, path: ctx.Path()}, true, nil
}

// missing returns the first required property absent from instance in
// declared order.
func (v *requiredValidator) missing(instance any) (string, bool) {
	obj, ok := instance.(map[string]any)
	if !ok {
		return "", false
	}
	for _, name := range v.required {
		if _, ok := obj[name]; !ok {
			return name, true
		}
	}
	return "", false
}

func (v *requiredValidator) IsValid(instance any) bool {
	_, missing := v.missing(instance)
	return !missing
}

// Validate reports only the first missing property, not all of them.
func (v *requiredValidator) Validate(instance any) jskema.ErrorSeq {
	name, missing := v.missing(instance)
	if !missing {
		return jskema.NoErrors()
	}
	return jskema.OneError(func() jskema.ValidationError {
		return jskema.ValidationError{
			Keyword:      "required",
			InstancePath: v.path.Clone(),
			Instance:     jskema.CloneValue(instance),
			Detail:       jskema.RequiredDetail{Property: name},
		}
	})
}

func (v *requiredValidator) String() string {
	return "required: [" + strings.Join(v.required, ", ") + "]"
}
