package jskema

import (
	"strconv"
	"strings"
)

// InstancePath locates a value inside an instance as an ordered list of
// property names and stringified array indices.
type InstancePath []string

// Push returns a new path with seg appended. The receiver is never aliased,
// so snapshots taken before a Push stay intact.
func (p InstancePath) Push(seg string) InstancePath {
	out := make(InstancePath, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// PushIndex appends an array index segment.
func (p InstancePath) PushIndex(i int) InstancePath { return p.Push(strconv.Itoa(i)) }

// Clone returns an independent copy. A nil path clones to nil.
func (p InstancePath) Clone() InstancePath {
	if p == nil {
		return nil
	}
	return append(InstancePath(nil), p...)
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders the path as an RFC 6901 JSON Pointer; the root is "/".
func (p InstancePath) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(seg))
	}
	return b.String()
}

func (p InstancePath) String() string { return p.Pointer() }
