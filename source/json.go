package source

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/jskema/internal/engine"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

// jsonTokens is an engine.TokenSource reading with a goccy/go-json Decoder.
type jsonTokens struct {
	dec   *j.Decoder
	stack []frame
}

func newJSONTokens(r io.Reader) *jsonTokens {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &jsonTokens{dec: dec}
}

func (s *jsonTokens) Location() int64 { return s.dec.InputOffset() }

func (s *jsonTokens) NextToken() (eng.Token, error) {
	off := s.dec.InputOffset()
	tok, err := s.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, fmt.Errorf("source: json at offset %d: %w", off, err)
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return eng.Token{Kind: eng.KindBeginObject, Offset: off}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return eng.Token{Kind: eng.KindBeginArray, Offset: off}, nil
		case '}':
			s.pop()
			return eng.Token{Kind: eng.KindEndObject, Offset: off}, nil
		case ']':
			s.pop()
			return eng.Token{Kind: eng.KindEndArray, Offset: off}, nil
		}
	case string:
		if n := len(s.stack); n > 0 && s.stack[n-1].kind == kindObject && s.stack[n-1].expectingKey {
			s.stack[n-1].expectingKey = false
			return eng.Token{Kind: eng.KindKey, String: v, Offset: off}, nil
		}
		s.valueDone()
		return eng.Token{Kind: eng.KindString, String: v, Offset: off}, nil
	case bool:
		s.valueDone()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: off}, nil
	case j.Number:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: off}, nil
	case float64:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: off}, nil
	case nil:
		s.valueDone()
		return eng.Token{Kind: eng.KindNull, Offset: off}, nil
	}
	return eng.Token{}, fmt.Errorf("source: json at offset %d: unexpected token %v", off, tok)
}

func (s *jsonTokens) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.valueDone()
}

// valueDone marks the end of a member value in the enclosing object.
func (s *jsonTokens) valueDone() {
	if n := len(s.stack); n > 0 && s.stack[n-1].kind == kindObject {
		s.stack[n-1].expectingKey = true
	}
}
