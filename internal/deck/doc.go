// Package deck reads decks of cards from YAML files.
//
// A deck file looks like this:
//
//	language: python
//	combining: true
//	cards:
//	  - id: fib
//	    expected: |
//	      def fib(n):
//	          return n if n < 2 else fib(n - 1) + fib(n - 2)
//	    typed: |
//	      def fib(n):
//	          return n if n < 2 else fib(n-1) + fib(n-2)
//
// The deck-level language and combining settings apply to cards that do not
// set their own. Cards without an id are named after the file and their
// position, for example "basics.yaml#3".
package deck
