package jskema

import "strings"

// Validator is one compiled keyword. Implementations are immutable after
// compilation and safe for concurrent use.
type Validator interface {
	// IsValid reports whether the instance satisfies the keyword. It never
	// builds error payloads.
	IsValid(instance any) bool
	// Validate returns the violations of the keyword, lazily.
	Validate(instance any) ErrorSeq
	// String describes the keyword as "<keyword>: <value>".
	String() string
}

// Validators is the ordered set of keywords of one schema object. It accepts
// an instance only when every member does.
type Validators []Validator

// IsValid stops at the first rejecting validator.
func (vs Validators) IsValid(instance any) bool {
	for _, v := range vs {
		if !v.IsValid(instance) {
			return false
		}
	}
	return true
}

// Validate concatenates the members' errors in order. A conforming instance
// gets the shared empty sequence.
func (vs Validators) Validate(instance any) ErrorSeq {
	switch {
	case len(vs) == 1:
		return vs[0].Validate(instance)
	case vs.IsValid(instance):
		return NoErrors()
	}
	return func(yield func(ValidationError) bool) {
		for _, v := range vs {
			for e := range v.Validate(instance) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// String renders the set as "{a: 1, b: 2}".
func (vs Validators) String() string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Schema is a compiled schema document. It is built once by Registry.Compile
// and evaluated against any number of instances, concurrently if needed.
type Schema struct {
	validators Validators
	raw        any
}

// IsValid reports whether instance conforms to the schema.
func (s *Schema) IsValid(instance any) bool { return s.validators.IsValid(instance) }

// Validate returns the violations of instance, lazily.
func (s *Schema) Validate(instance any) ErrorSeq { return s.validators.Validate(instance) }

// Check returns nil when instance conforms, Errors otherwise. The boolean
// check runs first so conforming instances pay no error construction.
func (s *Schema) Check(instance any) error {
	if s.validators.IsValid(instance) {
		return nil
	}
	return s.validators.Validate(instance).Collect()
}

// Validators exposes the compiled top-level validators.
func (s *Schema) Validators() Validators { return s.validators }

// Raw returns the schema document the tree was compiled from.
func (s *Schema) Raw() any { return s.raw }

func (s *Schema) String() string { return s.validators.String() }

// falseValidator is the boolean schema false.
type falseValidator struct {
	path InstancePath
}

func (falseValidator) IsValid(any) bool { return false }

func (v falseValidator) Validate(instance any) ErrorSeq {
	return OneError(func() ValidationError {
		return ValidationError{Keyword: "false", InstancePath: v.path.Clone(), Instance: CloneValue(instance), Detail: FalseDetail{}}
	})
}

func (falseValidator) String() string { return "false" }
