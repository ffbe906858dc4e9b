package keywords

import (
	jskema "github.com/reoring/jskema"
)

// boundValidator implements minimum, maximum, exclusiveMinimum and
// exclusiveMaximum. The limit keeps the representation it was written in and
// is compared with the instance exactly: two integers are never compared
// through float64.
type boundValidator struct {
	keyword   string
	limit     jskema.Number
	lower     bool // minimum side
	exclusive bool
	path      jskema.InstancePath
}

func (v *boundValidator) accepts(instance any) bool {
	n, ok := jskema.NumberOf(instance)
	if !ok {
		return true
	}
	c, ok := n.Cmp(v.limit)
	if !ok {
		return false
	}
	switch {
	case v.lower && v.exclusive:
		return c > 0
	case v.lower:
		return c >= 0
	case v.exclusive:
		return c < 0
	default:
		return c <= 0
	}
}

func (v *boundValidator) IsValid(instance any) bool { return v.accepts(instance) }

func (v *boundValidator) Validate(instance any) jskema.ErrorSeq {
	if v.accepts(instance) {
		return jskema.NoErrors()
	}
	return jskema.OneError(func() jskema.ValidationError {
		return jskema.ValidationError{
			Keyword:      v.keyword,
			InstancePath: v.path.Clone(),
			Instance:     jskema.CloneValue(instance),
			Detail:       jskema.BoundDetail{Limit: v.limit, Exclusive: v.exclusive},
		}
	})
}

func (v *boundValidator) String() string {
	s := v.keyword + ": " + v.limit.String()
	if v.exclusive && (v.keyword == "minimum" || v.keyword == "maximum") {
		s += " (exclusive)"
	}
	return s
}

// exclusiveCompiler compiles exclusiveMinimum/exclusiveMaximum. A boolean
// fragment is the draft-4 modifier form handled by the sibling
// minimum/maximum, so it is not applicable here.
func exclusiveCompiler(keyword string, lower bool) jskema.KeywordCompiler {
	return func(_ map[string]any, fragment any, ctx *jskema.Context) (jskema.Validator, bool, error) {
		if _, ok := fragment.(bool); ok {
			return nil, false, nil
		}
		limit, ok := jskema.NumberOf(fragment)
		if !ok {
			return nil, true, ctx.SchemaError(keyword, "expected a number")
		}
		return &boundValidator{keyword: keyword, limit: limit, lower: lower, exclusive: true, path: ctx.Path()}, true, nil
	}
}

// inclusiveCompiler compiles minimum/maximum, honoring a draft-4 boolean
// modifier in the named sibling keyword.
func inclusiveCompiler(keyword, modifier string, lower bool) jskema.KeywordCompiler {
	return func(parent map[string]any, fragment any, ctx *jskema.Context) (jskema.Validator, bool, error) {
		limit, ok := jskema.NumberOf(fragment)
		if !ok {
			return nil, true, ctx.SchemaError(keyword, "expected a number")
		}
		exclusive, _ := parent[modifier].(bool)
		return &boundValidator{keyword: keyword, limit: limit, lower: lower, exclusive: exclusive, path: ctx.Path()}, true, nil
	}
}
