package jskema

// Package jskema compiles JSON Schema keyword constraints into an immutable
// validator tree and evaluates instances against it.
//
// - Compile once: a Registry maps keywords to KeywordCompilers and turns a
//   schema document into a *Schema.
// - Validate many: Schema.IsValid answers yes/no without building error
//   payloads; Schema.Validate yields ValidationErrors lazily.
// - Numbers keep their native representation (uint64/int64/float64) and are
//   compared exactly across representations. Integer-only schema values such
//   as size limits reject float64, so decode schema documents with
//   source.JSONBytes or json.Number rather than plain encoding/json.
//
// Design policy:
// - Keep the contracts (Validator, ErrorSeq, Context, Registry) in the root
//   package; keyword implementations live under keywords/.
// - Decoding text into the value model lives under source/; the core never
//   parses raw text.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s, err := keywords.Compile(schemaDoc)
//	if s.IsValid(instance) {
//		...
//	}
//	for e := range s.Validate(instance) {
//		fmt.Println(e.Pointer(), e.Keyword, e.Message())
//	}
