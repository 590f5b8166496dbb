// Package render turns aligned tokens into output.
//
// Tokens produces the markup fragment shown on the answer side of a card:
// one span per token, classed typeGood, typeBad or typeMissed. Text produces
// a plain projection of the same tokens for terminals and reports.
package render
