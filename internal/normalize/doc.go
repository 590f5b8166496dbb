// Package normalize removes structural noise from flashcard answers and
// brings text into a canonical Unicode form before comparison.
//
// The expected answer usually comes straight out of a card field and may carry
// audio references ([sound:...]), HTML markup and encoded line breaks. Expected
// strips all of that. Unicode applies NFC so that an accent typed as a base
// letter plus a combining mark compares equal to the precomposed character.
//
// Every function here is total: malformed markup is left in place instead of
// producing an error.
package normalize
