// Package pipeline prepares a submission before the two answers are compared.
//
// Cards store their expected answers as editor markup: lines are wrapped in
// <div> or separated by <br>, indentation uses &nbsp; and code often sits
// inside <pre>. Learners type plain text with their own line endings and
// comments. The preparation pipeline runs an ordered list of named steps over
// a model.Submission so that both sides reach the comparison in the same
// shape.
//
// NewDefault builds the standard pipeline. Steps can be added, or a custom
// pipeline assembled with New and AddStep.
package pipeline
