package keywords

import (
	jskema "github.com/reoring/jskema"
)

// notValidator negates a compiled sub-schema. The sub-tree is compiled once
// at schema-load time and evaluated per instance.
type notValidator struct {
	original   any // the sub-schema as written, for error rendering
	validators jskema.Validators
	path       jskema.InstancePath
}

func compileNot(_ map[string]any, fragment any, ctx *jskema.Context) (jskema.Validator, bool, error) {
	vs, err := ctx.CompileValidators(fragment)
	if err != nil {
		return nil, true, err
	}
	return &notValidator{original: jskema.CloneValue(fragment), validators: vs, path: ctx.Path()}, true, nil
}

func (v *notValidator) IsValid(instance any) bool { return !v.validators.IsValid(instance) }

// Validate reports one error when the sub-schema accepts; which
// sub-validators passed is not reported.
func (v *notValidator) Validate(instance any) jskema.ErrorSeq {
	if v.IsValid(instance) {
		return jskema.NoErrors()
	}
	return jskema.OneError(func() jskema.ValidationError {
		return jskema.ValidationError{
			Keyword:      "not",
			InstancePath: v.path.Clone(),
			Instance:     jskema.CloneValue(instance),
			Detail:       jskema.NotDetail{Schema: jskema.CloneValue(v.original)},
		}
	})
}

func (v *notValidator) String() string { return "not: " + v.validators.String() }
