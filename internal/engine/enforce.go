package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// DuplicatePolicy selects how repeated object keys are handled.
type DuplicatePolicy int

const (
	DuplicateError    DuplicatePolicy = iota // Fail on the second occurrence.
	DuplicateLastWins                        // Keep the last value.
)

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicatePolicy
	MaxDepth    int // 0 means unbounded
}

// DuplicateKeyError reports a repeated object key and where it occurred.
type DuplicateKeyError struct {
	Key     string
	Pointer string // JSON Pointer of the enclosing object
	Offset  int64
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q in object at %s", e.Key, e.Pointer)
}

// DepthError reports nesting beyond EnforceOptions.MaxDepth.
type DepthError struct {
	MaxDepth int
	Pointer  string
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("max depth %d exceeded at %s", e.MaxDepth, e.Pointer)
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind      containerKind
	keys      map[string]struct{}
	segment   string // segment of this container within its parent
	nextIndex int
	key       string // pending member name
}

// WrapWithEnforcement returns a TokenSource that enforces the duplicate key
// policy and maximum nesting depth.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcingTokenSource{inner: inner, opt: opt}
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   EnforceOptions
	stack []frame
}

func (e *enforcingTokenSource) Location() int64 { return e.inner.Location() }

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		seg := e.valueSegment()
		f := frame{kind: kindArray, segment: seg}
		if tok.Kind == KindBeginObject {
			f = frame{kind: kindObject, keys: make(map[string]struct{}), segment: seg}
		}
		e.stack = append(e.stack, f)
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, &DepthError{MaxDepth: e.opt.MaxDepth, Pointer: e.pointer(len(e.stack))}
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
	case KindKey:
		if n := len(e.stack); n > 0 {
			top := &e.stack[n-1]
			if _, dup := top.keys[tok.String]; dup && e.opt.OnDuplicate == DuplicateError {
				off := tok.Offset
				if off < 0 {
					off = e.inner.Location()
				}
				return Token{}, &DuplicateKeyError{Key: tok.String, Pointer: e.pointer(n), Offset: off}
			}
			top.keys[tok.String] = struct{}{}
			top.key = tok.String
		}
	default:
		e.valueSegment()
	}
	return tok, nil
}

// valueSegment consumes the position of the value about to be read in the
// enclosing container and returns its path segment.
func (e *enforcingTokenSource) valueSegment() string {
	n := len(e.stack)
	if n == 0 {
		return ""
	}
	top := &e.stack[n-1]
	if top.kind == kindObject {
		return top.key
	}
	seg := strconv.Itoa(top.nextIndex)
	top.nextIndex++
	return seg
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// pointer renders the path of the first n open containers.
func (e *enforcingTokenSource) pointer(n int) string {
	if n <= 1 {
		return "/"
	}
	var b strings.Builder
	for _, f := range e.stack[1:n] {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(f.segment))
	}
	return b.String()
}
