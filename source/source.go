// Package source decodes JSON and YAML documents into the value model
// consumed by jskema: nil, bool, string, uint64/int64/float64 numbers,
// []any and map[string]any.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jskema "github.com/reoring/jskema"
	eng "github.com/reoring/jskema/internal/engine"
)

// DuplicatePolicy selects how repeated JSON object keys are handled.
type DuplicatePolicy = eng.DuplicatePolicy

const (
	DuplicateError    = eng.DuplicateError
	DuplicateLastWins = eng.DuplicateLastWins
)

// DuplicateKeyError is returned for a repeated JSON key under
// DuplicateError.
type DuplicateKeyError = eng.DuplicateKeyError

// DepthError is returned when a document nests deeper than MaxDepth.
type DepthError = eng.DepthError

// Options controls decoding. The zero value rejects duplicate keys and does
// not bound nesting depth.
type Options struct {
	MaxDepth       int
	OnDuplicateKey DuplicatePolicy
}

// DecodeJSON reads exactly one JSON value from r.
func DecodeJSON(r io.Reader, opts Options) (any, error) {
	src := eng.WrapWithEnforcement(newJSONTokens(r), eng.EnforceOptions{
		OnDuplicate: opts.OnDuplicateKey,
		MaxDepth:    opts.MaxDepth,
	})
	return eng.Decode(src, number)
}

// JSONBytes decodes one JSON value from b.
func JSONBytes(b []byte, opts Options) (any, error) {
	return DecodeJSON(bytes.NewReader(b), opts)
}

// DecodeYAML reads the first YAML document from r. An empty stream decodes
// to nil.
func DecodeYAML(r io.Reader, opts Options) (any, error) {
	v, err := NewYAMLReader(r, opts).Next()
	if err == io.EOF {
		return nil, nil
	}
	return v, err
}

// YAMLDocuments reads every document of a multi-document YAML stream.
func YAMLDocuments(r io.Reader, opts Options) ([]any, error) {
	return NewYAMLReader(r, opts).ReadAll()
}

// Load reads a file, choosing YAML for .yaml/.yml and JSON otherwise.
func Load(path string, opts Options) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var v any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		v, err = DecodeYAML(f, opts)
	default:
		v, err = DecodeJSON(f, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func number(text string) (any, error) {
	n, err := jskema.ParseNumber(text)
	if err != nil {
		return nil, err
	}
	return n.Value(), nil
}
