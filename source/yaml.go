package source

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	jskema "github.com/reoring/jskema"
)

// YAMLDuplicateKeyError reports a duplicate key found in a YAML mapping with
// both the first occurrence position and the duplicate occurrence position.
type YAMLDuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *YAMLDuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// YAMLReader decodes a multi-document YAML stream through yaml.Node so that
// duplicate keys are detected with positions. Documents come back in the
// value model with typed numbers.
type YAMLReader struct {
	dec  *yaml.Decoder
	opts Options

	// per-document alias bookkeeping
	expanding map[*yaml.Node]struct{}
	aliases   int
}

// MaxAliasExpansions bounds how many alias references one document may
// expand, so that nested anchors cannot blow up exponentially.
const MaxAliasExpansions = 10000

// YAMLAliasError reports an alias that refers to one of its own ancestors or
// a document that expands too many aliases.
type YAMLAliasError struct {
	Anchor string
	Line   int
	Col    int
	Cyclic bool
}

func (e *YAMLAliasError) Error() string {
	if e.Cyclic {
		return fmt.Sprintf("source: yaml alias *%s at %d:%d refers to itself", e.Anchor, e.Line, e.Col)
	}
	return fmt.Sprintf("source: yaml alias *%s at %d:%d exceeds %d alias expansions", e.Anchor, e.Line, e.Col, MaxAliasExpansions)
}

// NewYAMLReader constructs a YAMLReader. Options.MaxDepth applies per
// document; duplicate keys are always errors.
func NewYAMLReader(r io.Reader, opts Options) *YAMLReader {
	return &YAMLReader{dec: yaml.NewDecoder(r), opts: opts}
}

// Next returns the next document. It returns (nil, io.EOF) when the stream
// is exhausted.
func (s *YAMLReader) Next() (any, error) {
	var root yaml.Node
	if err := s.dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("source: yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	s.expanding, s.aliases = map[*yaml.Node]struct{}{}, 0
	return s.convert(root.Content[0], 0)
}

// ReadAll reads all documents from the stream.
func (s *YAMLReader) ReadAll() ([]any, error) {
	var out []any
	for {
		v, err := s.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, v)
	}
}

func (s *YAMLReader) convert(n *yaml.Node, depth int) (any, error) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		depth++
		if s.opts.MaxDepth > 0 && depth > s.opts.MaxDepth {
			return nil, fmt.Errorf("source: yaml at %d:%d: max depth %d exceeded", n.Line, n.Column, s.opts.MaxDepth)
		}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return s.convert(n.Content[0], depth)
	case yaml.AliasNode:
		s.aliases++
		if s.aliases > MaxAliasExpansions {
			return nil, &YAMLAliasError{Anchor: n.Value, Line: n.Line, Col: n.Column}
		}
		if _, busy := s.expanding[n.Alias]; busy || n.Alias == nil {
			return nil, &YAMLAliasError{Anchor: n.Value, Line: n.Line, Col: n.Column, Cyclic: true}
		}
		s.expanding[n.Alias] = struct{}{}
		v, err := s.convert(n.Alias, depth)
		delete(s.expanding, n.Alias)
		return v, err
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if pos, dup := first[k.Value]; dup {
				return nil, &YAMLDuplicateKeyError{Key: k.Value, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[k.Value] = [2]int{k.Line, k.Column}
			val, err := s.convert(v, depth)
			if err != nil {
				return nil, err
			}
			m[k.Value] = val
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := s.convert(c, depth)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalar(n), nil
	default:
		return nil, nil
	}
}

func scalar(n *yaml.Node) any {
	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
		return n.Value
	case "!!int":
		if u, err := strconv.ParseUint(n.Value, 0, 64); err == nil {
			return u
		}
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			if i >= 0 {
				return uint64(i)
			}
			return i
		}
		if num, err := jskema.ParseNumber(strings.ReplaceAll(n.Value, "_", "")); err == nil {
			return num.Value()
		}
		return n.Value
	case "!!float":
		switch strings.ToLower(n.Value) {
		case ".inf", "+.inf":
			return math.Inf(1)
		case "-.inf":
			return math.Inf(-1)
		case ".nan":
			return math.NaN()
		}
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f
		}
		return n.Value
	default:
		return n.Value
	}
}
