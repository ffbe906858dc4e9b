package keywords

import (
	"strconv"

	jskema "github.com/reoring/jskema"
)

// sizeKind selects what a size keyword counts.
type sizeKind uint8

const (
	countItems      sizeKind = iota // array elements
	countLength                     // unicode scalar values of a string
	countProperties                 // object members
)

// measure returns the size of instance when its type matches the keyword's
// domain. ok is false otherwise and the keyword does not apply.
func (k sizeKind) measure(instance any) (n uint64, ok bool) {
	switch k {
	case countItems:
		if a, ok := instance.([]any); ok {
			return uint64(len(a)), true
		}
	case countLength:
		if s, ok := instance.(string); ok {
			return jskema.StringLength(s), true
		}
	case countProperties:
		if m, ok := instance.(map[string]any); ok {
			return uint64(len(m)), true
		}
	}
	return 0, false
}

// sizeValidator implements maxItems, minItems, maxLength, minLength,
// maxProperties and minProperties.
type sizeValidator struct {
	keyword string
	kind    sizeKind
	max     bool
	limit   uint64
	path    jskema.InstancePath
}

// accepts is the single predicate both evaluation modes derive from.
func (v *sizeValidator) accepts(instance any) bool {
	n, ok := v.kind.measure(instance)
	if !ok {
		return true
	}
	if v.max {
		return n <= v.limit
	}
	return n >= v.limit
}

func (v *sizeValidator) IsValid(instance any) bool { return v.accepts(instance) }

func (v *sizeValidator) Validate(instance any) jskema.ErrorSeq {
	if v.accepts(instance) {
		return jskema.NoErrors()
	}
	return jskema.OneError(func() jskema.ValidationError {
		return jskema.ValidationError{
			Keyword:      v.keyword,
			InstancePath: v.path.Clone(),
			Instance:     jskema.CloneValue(instance),
			Detail:       jskema.LimitDetail{Limit: v.limit},
		}
	})
}

func (v *sizeValidator) String() string {
	return v.keyword + ": " + strconv.FormatUint(v.limit, 10)
}

// sizeCompiler returns the compiler of one size keyword.
func sizeCompiler(keyword string, kind sizeKind, max bool) jskema.KeywordCompiler {
	return func(_ map[string]any, fragment any, ctx *jskema.Context) (jskema.Validator, bool, error) {
		limit, ok := nonNegativeInteger(fragment)
		if !ok {
			return nil, true, ctx.SchemaError(keyword, "expected a non-negative integer")
		}
		return &sizeValidator{keyword: keyword, kind: kind, max: max, limit: limit, path: ctx.Path()}, true, nil
	}
}

// nonNegativeInteger accepts integer literals only; 2.0 is rejected.
func nonNegativeInteger(fragment any) (uint64, bool) {
	n, ok := jskema.NumberOf(fragment)
	if !ok {
		return 0, false
	}
	return n.Uint64()
}
