package jskema

// ErrorSeq is a lazy, single-pass sequence of validation errors. It has the
// shape of iter.Seq[ValidationError] and is consumed with range:
//
//	for err := range v.Validate(instance) {
//		...
//	}
//
// Error payloads (instance copies, path snapshots) are built only when the
// consumer pulls the element.
type ErrorSeq func(yield func(ValidationError) bool)

var noErrors ErrorSeq = func(func(ValidationError) bool) {}

// NoErrors returns the shared empty sequence. It does not allocate.
func NoErrors() ErrorSeq { return noErrors }

// OneError returns a sequence yielding the error produced by build. build
// runs only if the consumer pulls the element.
func OneError(build func() ValidationError) ErrorSeq {
	return func(yield func(ValidationError) bool) {
		yield(build())
	}
}

// Concat chains sequences in order, stopping as soon as the consumer stops.
func Concat(seqs ...ErrorSeq) ErrorSeq {
	return func(yield func(ValidationError) bool) {
		for _, s := range seqs {
			for e := range s {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Collect drains the sequence into Errors. It returns nil when the sequence
// is empty.
func (s ErrorSeq) Collect() Errors {
	var out Errors
	for e := range s {
		out = append(out, e)
	}
	return out
}

// CollectN drains at most n errors; n <= 0 means no limit.
func (s ErrorSeq) CollectN(n int) Errors {
	if n <= 0 {
		return s.Collect()
	}
	var out Errors
	for e := range s {
		out = append(out, e)
		if len(out) == n {
			break
		}
	}
	return out
}

// First returns the first error, if any, without building the rest.
func (s ErrorSeq) First() (ValidationError, bool) {
	for e := range s {
		return e, true
	}
	return ValidationError{}, false
}

// Count drains the sequence and returns the number of errors.
func (s ErrorSeq) Count() int {
	n := 0
	for range s {
		n++
	}
	return n
}
