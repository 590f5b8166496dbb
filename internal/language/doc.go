// Package language resolves free-form language names to the closed set of
// languages whose comments typediff knows how to strip.
//
// Resolution is deliberately strict: unknown input yields Invalid and it is
// up to the caller to fall back to None and tell the user about it.
//
//	tag := language.Resolve(" PY ") // language.Python
//	tag = language.Resolve("brainfuck") // language.Invalid
package language
