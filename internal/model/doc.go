// Package model defines the data structures shared by the grader, the deck
// loader and the report writers.
//
// This package contains the following main types:
//   - Card: an expected answer, what was typed for it and its language
//   - Submission: the pair of texts flowing through the preparation pipeline
//   - Result: the graded comparison of one card
//   - Report: the results of one grading run
//
// The types carry JSON and YAML tags so they can be read from deck files and
// written out by the report package without conversion.
package model
