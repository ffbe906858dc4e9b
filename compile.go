package jskema

import (
	"slices"

	"go.uber.org/zap"
)

// KeywordCompiler turns one keyword's schema fragment into a Validator.
//
// parent is the enclosing schema object, for keywords that depend on their
// siblings. ok == false means the compiler does not handle this fragment and
// dispatch continues with the next compiler registered for the keyword. A
// non-nil error aborts compilation of the whole document.
type KeywordCompiler func(parent map[string]any, fragment any, ctx *Context) (v Validator, ok bool, err error)

// UnknownPolicy controls how keywords without a registered compiler are
// handled.
type UnknownPolicy int

const (
	UnknownIgnore UnknownPolicy = iota // Skip unknown keywords.
	UnknownStrict                      // Fail compilation on unknown keywords.
)

// Registry maps keyword names to compilers and compiles schema documents.
// Configure it before the first Compile; Compile itself only reads it.
type Registry struct {
	compilers map[string][]KeywordCompiler
	unknown   UnknownPolicy
	logger    *zap.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithUnknownPolicy sets the unknown-keyword policy.
func WithUnknownPolicy(p UnknownPolicy) RegistryOption {
	return func(r *Registry) { r.unknown = p }
}

// WithLogger sets the logger used for compile tracing. nil restores the
// no-op logger.
func WithLogger(l *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if l == nil {
			l = zap.NewNop()
		}
		r.logger = l
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{compilers: make(map[string][]KeywordCompiler), logger: zap.NewNop()}
	r.Apply(opts...)
	return r
}

// Apply applies options to an existing registry.
func (r *Registry) Apply(opts ...RegistryOption) *Registry {
	for _, o := range opts {
		o(r)
	}
	return r
}

// Register appends a compiler for keyword. Compilers registered for the same
// keyword are tried in registration order.
func (r *Registry) Register(keyword string, c KeywordCompiler) *Registry {
	r.compilers[keyword] = append(r.compilers[keyword], c)
	return r
}

// Keywords lists the registered keywords in lexical order.
func (r *Registry) Keywords() []string {
	out := make([]string, 0, len(r.compilers))
	for k := range r.compilers {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Compile builds the validator tree for doc, which must be a schema object
// or a boolean schema. Any keyword error aborts the whole compilation.
func (r *Registry) Compile(doc any) (*Schema, error) {
	ctx := &Context{registry: r}
	vs, err := ctx.CompileValidators(doc)
	if err != nil {
		r.logger.Debug("schema compilation failed", zap.Error(err))
		return nil, err
	}
	r.logger.Debug("schema compiled", zap.Int("validators", len(vs)))
	return &Schema{validators: vs, raw: doc}, nil
}

// Context is the transient state of one compilation: the instance path the
// current schema applies to and the schema location being compiled. It is
// owned by a single Compile call and must not be retained by validators;
// they capture Path() snapshots instead.
type Context struct {
	registry *Registry
	path     InstancePath
	location InstancePath
}

// Path returns a snapshot of the current instance path.
func (c *Context) Path() InstancePath { return c.path.Clone() }

// Location returns the JSON Pointer of the schema fragment being compiled.
func (c *Context) Location() string { return c.location.Pointer() }

// Logger returns the registry logger.
func (c *Context) Logger() *zap.Logger { return c.registry.logger }

// WithSegment runs fn with seg appended to both the instance path and the
// schema location, for keywords whose sub-schemas apply to a nested instance
// location (e.g. properties).
func (c *Context) WithSegment(seg string, fn func() error) error {
	path, loc := c.path, c.location
	c.path, c.location = path.Push(seg), loc.Push(seg)
	defer func() { c.path, c.location = path, loc }()
	return fn()
}

// withLocation runs fn with seg appended to the schema location only.
func (c *Context) withLocation(seg string, fn func() error) error {
	loc := c.location
	c.location = loc.Push(seg)
	defer func() { c.location = loc }()
	return fn()
}

// SchemaError reports a malformed fragment at the current schema location.
func (c *Context) SchemaError(keyword, reason string) error {
	return &SchemaError{Keyword: keyword, Location: c.Location(), Reason: reason, Err: ErrMalformedSchema}
}

// CompileValidators compiles a nested schema with this context. The instance
// path is left unchanged: descending through the schema does not move
// through the instance.
func (c *Context) CompileValidators(schema any) (Validators, error) {
	switch s := schema.(type) {
	case bool:
		if s {
			return nil, nil
		}
		return Validators{falseValidator{path: c.Path()}}, nil
	case map[string]any:
		keywords := make([]string, 0, len(s))
		for k := range s {
			keywords = append(keywords, k)
		}
		slices.Sort(keywords)
		vs := make(Validators, 0, len(keywords))
		for _, kw := range keywords {
			var (
				v  Validator
				ok bool
			)
			err := c.withLocation(kw, func() error {
				var err error
				v, ok, err = c.compileKeyword(s, kw)
				return err
			})
			if err != nil {
				return nil, err
			}
			if ok {
				vs = append(vs, v)
			}
		}
		return vs, nil
	default:
		return nil, &SchemaError{
			Location: c.Location(),
			Reason:   "schema must be an object or a boolean, got " + typeName(schema),
			Err:      ErrMalformedSchema,
		}
	}
}

func (c *Context) compileKeyword(parent map[string]any, keyword string) (Validator, bool, error) {
	r := c.registry
	compilers := r.compilers[keyword]
	if len(compilers) == 0 {
		if r.unknown == UnknownStrict {
			return nil, false, &SchemaError{Keyword: keyword, Location: c.Location(), Err: ErrUnknownKeyword}
		}
		r.logger.Debug("ignoring unknown keyword", zap.String("keyword", keyword), zap.String("location", c.Location()))
		return nil, false, nil
	}
	for _, compile := range compilers {
		v, ok, err := compile(parent, parent[keyword], c)
		if err != nil {
			return nil, false, err
		}
		if ok {
			r.logger.Debug("compiled keyword", zap.String("keyword", keyword), zap.String("location", c.Location()))
			return v, true, nil
		}
	}
	return nil, false, nil
}

func typeName(v any) string {
	if t := TypeOf(v); t != "" {
		return t
	}
	return "unsupported Go value"
}
