package jskema

// Detail is the keyword-specific payload of a ValidationError.
type Detail interface {
	// Params exposes the payload as structured parameters for i18n and
	// observability (e.g. {"limit": 3}).
	Params() map[string]any
}

// LimitDetail is reported by the size keywords (maxItems, minLength, ...).
type LimitDetail struct {
	Limit uint64
}

func (d LimitDetail) Params() map[string]any { return map[string]any{"limit": d.Limit} }

// BoundDetail is reported by minimum/maximum and their exclusive forms. The
// limit keeps the representation it was written in.
type BoundDetail struct {
	Limit     Number
	Exclusive bool
}

func (d BoundDetail) Params() map[string]any {
	return map[string]any{"limit": d.Limit, "exclusive": d.Exclusive}
}

// RequiredDetail names the first missing property.
type RequiredDetail struct {
	Property string
}

func (d RequiredDetail) Params() map[string]any { return map[string]any{"property": d.Property} }

// EnumDetail carries the full option list, not the closest option.
type EnumDetail struct {
	Options []any
}

func (d EnumDetail) Params() map[string]any { return map[string]any{"options": d.Options} }

// ConstDetail carries the expected value.
type ConstDetail struct {
	Expected any
}

func (d ConstDetail) Params() map[string]any { return map[string]any{"expected": d.Expected} }

// NotDetail carries the negated sub-schema as written.
type NotDetail struct {
	Schema any
}

func (d NotDetail) Params() map[string]any { return map[string]any{"schema": d.Schema} }

// FalseDetail is reported by the boolean schema false.
type FalseDetail struct{}

func (FalseDetail) Params() map[string]any { return nil }
