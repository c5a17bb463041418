// Package script transpiles Groovy-flavored inline test scripts into Postman
// sandbox JavaScript.
//
// The transpiler is a line-oriented pattern transducer, not a compiler front
// end. Each line runs through a fixed, ordered list of independent rewrite
// rules; a line may satisfy several rules in sequence. Lines matching no rule
// follow an explicit fallback policy: commented out for free-form bodies,
// literal passthrough for method bodies.
//
// Rule categories, in order:
//   - def declarations to block-scoped let
//   - interpolated strings to template literals
//   - Groovy map literals to object literals
//   - each/collect/find/any/all closures to arrow-callback forms
//   - log calls to console calls
//   - cross-step property lookups to variable-store reads
//   - redundant JSON parse calls elided in favor of pm.response.json()
//   - assert equality to named pm.test blocks
//   - integer coercion to parseInt
//
// Method and class recognition tolerates exactly one level of nested braces
// inside a body; deeper nesting is a documented limitation.
package script
