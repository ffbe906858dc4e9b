package engine

import (
	"errors"
	"io"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token. Numbers are kept as text so the
// consumer decides their representation.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64 // byte offset; -1 if unknown
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// NumberConv converts number text into a value-model number.
type NumberConv func(text string) (any, error)

// ErrUnexpectedToken reports a token that cannot appear at its position.
var ErrUnexpectedToken = errors.New("engine: unexpected token")

// Decode builds a value-model tree (map[string]any, []any, string, bool,
// nil and whatever conv returns for numbers) from the token source. It
// expects exactly one top-level value.
func Decode(src TokenSource, conv NumberConv) (any, error) {
	tok, err := src.NextToken()
	if err != nil {
		return nil, err
	}
	v, err := decodeValue(src, tok, conv)
	if err != nil {
		return nil, err
	}
	if _, err := src.NextToken(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = ErrUnexpectedToken
		}
		return nil, err
	}
	return v, nil
}

func decodeValue(src TokenSource, tok Token, conv NumberConv) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return decodeObject(src, conv)
	case KindBeginArray:
		return decodeArray(src, conv)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return conv(tok.Number)
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, ErrUnexpectedToken
	}
}

func decodeObject(src TokenSource, conv NumberConv) (any, error) {
	m := make(map[string]any)
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey {
			return nil, ErrUnexpectedToken
		}
		vt, err := src.NextToken()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		v, err := decodeValue(src, vt, conv)
		if err != nil {
			return nil, err
		}
		m[tok.String] = v
	}
}

func decodeArray(src TokenSource, conv NumberConv) (any, error) {
	arr := []any{}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := decodeValue(src, tok, conv)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
