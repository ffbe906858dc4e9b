// Package keywords implements the built-in JSON Schema keyword compilers and
// the default registry wiring them together.
//
// Size limits (maxItems, minLength, ...) must be integer literals, so a
// document decoded by encoding/json into any, where 2 arrives as float64(2),
// fails to compile. Decode schemas with source.JSONBytes, or with
// encoding/json and Decoder.UseNumber so limits arrive as json.Number.
package keywords

import (
	jskema "github.com/reoring/jskema"
)

// Annotation keywords carry no constraint. They are registered so that
// UnknownStrict does not reject them; their compiler is never applicable.
var annotations = []string{
	"$schema", "$id", "id", "$comment", "title", "description",
	"default", "examples", "definitions", "$defs", "readOnly", "writeOnly",
}

func annotation(map[string]any, any, *jskema.Context) (jskema.Validator, bool, error) {
	return nil, false, nil
}

// Register adds every built-in keyword compiler to r.
func Register(r *jskema.Registry) *jskema.Registry {
	r.Register("maxItems", sizeCompiler("maxItems", countItems, true))
	r.Register("minItems", sizeCompiler("minItems", countItems, false))
	r.Register("maxLength", sizeCompiler("maxLength", countLength, true))
	r.Register("minLength", sizeCompiler("minLength", countLength, false))
	r.Register("maxProperties", sizeCompiler("maxProperties", countProperties, true))
	r.Register("minProperties", sizeCompiler("minProperties", countProperties, false))
	r.Register("required", compileRequired)
	r.Register("enum", compileEnum)
	r.Register("const", compileConst)
	r.Register("minimum", inclusiveCompiler("minimum", "exclusiveMinimum", true))
	r.Register("maximum", inclusiveCompiler("maximum", "exclusiveMaximum", false))
	r.Register("exclusiveMinimum", exclusiveCompiler("exclusiveMinimum", true))
	r.Register("exclusiveMaximum", exclusiveCompiler("exclusiveMaximum", false))
	r.Register("not", compileNot)
	r.Register("properties", compileProperties)
	for _, kw := range annotations {
		r.Register(kw, annotation)
	}
	return r
}

// Default returns a new registry with every built-in keyword.
func Default(opts ...jskema.RegistryOption) *jskema.Registry {
	return Register(jskema.NewRegistry(opts...))
}

// Compile compiles doc with the default registry.
func Compile(doc any, opts ...jskema.RegistryOption) (*jskema.Schema, error) {
	return Default(opts...).Compile(doc)
}
