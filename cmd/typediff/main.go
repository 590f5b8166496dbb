// Package main provides the entry point for the typediff CLI.
//
// typediff compares a typed answer against the expected one the way a code
// flashcard reviewer does: it strips comments and markup, aligns the two
// texts and prints the colour-coded comparison markup.
//
// Usage:
//
//	typediff compare -e 'print(1)  # hi' -t 'print(2)' -l python
//	typediff grade decks/
//
// See --help for all available options.
package main

func main() {
	Execute()
}
