package keywords

import (
	"slices"
	"strings"

	jskema "github.com/reoring/jskema"
)

type propertySchema struct {
	name       string
	validators jskema.Validators
}

// propertiesValidator applies a sub-schema to each named member that is
// present in an object instance.
type propertiesValidator struct {
	properties []propertySchema
}

func compileProperties(_ map[string]any, fragment any, ctx *jskema.Context) (jskema.Validator, bool, error) {
	m, ok := fragment.(map[string]any)
	if !ok {
		return nil, true, ctx.SchemaError("properties", "expected an object of schemas")
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	props := make([]propertySchema, 0, len(names))
	for _, name := range names {
		var vs jskema.Validators
		err := ctx.WithSegment(name, func() error {
			var err error
			vs, err = ctx.CompileValidators(m[name])
			return err
		})
		if err != nil {
			return nil, true, err
		}
		props = append(props, propertySchema{name: name, validators: vs})
	}
	return &propertiesValidator{properties: props}, true, nil
}

func (v *propertiesValidator) IsValid(instance any) bool {
	obj, ok := instance.(map[string]any)
	if !ok {
		return true
	}
	for _, p := range v.properties {
		if value, ok := obj[p.name]; ok && !p.validators.IsValid(value) {
			return false
		}
	}
	return true
}

func (v *propertiesValidator) Validate(instance any) jskema.ErrorSeq {
	obj, ok := instance.(map[string]any)
	if !ok || v.IsValid(instance) {
		return jskema.NoErrors()
	}
	return func(yield func(jskema.ValidationError) bool) {
		for _, p := range v.properties {
			value, ok := obj[p.name]
			if !ok {
				continue
			}
			for e := range p.validators.Validate(value) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

func (v *propertiesValidator) String() string {
	parts := make([]string, len(v.properties))
	for i, p := range v.properties {
		parts[i] = p.name + ": " + p.validators.String()
	}
	return "properties: {" + strings.Join(parts, ", ") + "}"
}
