// Package answer compares a typed answer with the expected one and produces
// the markup shown when a card is revealed.
//
// Compare is the whole engine in one call. Evaluate returns the same markup
// together with the alignment it was built from, for callers that want to
// score or report on the comparison.
package answer
