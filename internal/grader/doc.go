// Package grader grades cards: it resolves each card's language, prepares
// the submission, compares the answers and scores the outcome.
//
// Grader handles one card at a time. BatchGrader grades a deck concurrently
// with a bounded number of goroutines and returns results in deck order.
package grader
