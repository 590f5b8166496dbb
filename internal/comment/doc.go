// Package comment removes source-code comments from flashcard answers so that
// a learner is not graded on comments they chose not to type.
//
// Stripping is driven by per-language pattern tables rather than a lexer.
// A comment marker inside a string literal is treated as a comment too.
package comment
