// Package diff aligns a typed answer against the expected answer and
// classifies every span as good, bad or missing.
//
// Alignment works on units. In combining mode a unit is one Unicode scalar of
// the NFC text, so a wrong accent is a wrong unit. With combining disabled,
// marks are detached: the typed side loses them and the expected side keeps
// them glued to the preceding base character for display only, so accents
// never count as mistakes.
//
// Matching uses the Ratcliff/Obershelp longest-matching-block procedure of
// github.com/pmezard/go-difflib. Its worst case is quadratic in the input
// length, which is fine for flashcard-sized text but worth keeping in mind for
// callers feeding whole files.
package diff
