package pipeline

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/nao1215/typediff/internal/comment"
	"github.com/nao1215/typediff/internal/language"
	"github.com/nao1215/typediff/internal/model"
)

// Step names used by the default pipeline.
const (
	StepLineEndings    = "line_endings"
	StepMarkupBreaks   = "markup_breaks"
	StepNBSP           = "nbsp"
	StepBackslashes    = "backslashes"
	StepStripComments  = "strip_comments"
	StepStripPre       = "strip_pre"
	StepDropBlankLines = "drop_blank_lines"
	StepTrim           = "trim"
)

// Side selects which texts of a submission a TextStep rewrites.
type Side int

const (
	// SideBoth rewrites the expected and the typed text.
	SideBoth Side = iota
	// SideExpected rewrites only the expected text.
	SideExpected
	// SideTyped rewrites only the typed text.
	SideTyped
)

var (
	breakPattern = regexp.MustCompile(`(?i)<br\s*/?>|</?div(?:\s[^>]*)?>`)
	prePattern   = regexp.MustCompile(`(?i)</?pre(?:\s[^>]*)?>`)
	// backslashRun matches a run of backslashes.
	backslashRun = regexp.MustCompile(`\\+`)
)

// TextStep applies a string transformation to one or both sides of a
// submission.
type TextStep struct {
	name      string
	side      Side
	transform func(string) string
}

// NewTextStep creates a step named name that rewrites side with transform.
func NewTextStep(name string, side Side, transform func(string) string) *TextStep {
	return &TextStep{
		name:      name,
		side:      side,
		transform: transform,
	}
}

// Name returns the step name.
func (s *TextStep) Name() string {
	return s.name
}

// Do rewrites the selected sides of sub.
func (s *TextStep) Do(_ context.Context, sub *model.Submission) error {
	if s.side != SideTyped {
		sub.Expected = s.transform(sub.Expected)
	}
	if s.side != SideExpected {
		sub.Typed = s.transform(sub.Typed)
	}
	return nil
}

// NewLineEndingsStep converts CRLF and lone CR to LF on both sides.
func NewLineEndingsStep() *TextStep {
	return NewTextStep(StepLineEndings, SideBoth, NormalizeLineEndings)
}

// NewMarkupBreaksStep turns <br> and <div> boundaries of the expected
// answer into LF.
func NewMarkupBreaksStep() *TextStep {
	return NewTextStep(StepMarkupBreaks, SideExpected, func(text string) string {
		return breakPattern.ReplaceAllString(text, "\n")
	})
}

// NewNBSPStep turns &nbsp; and U+00A0 in the expected answer into spaces.
func NewNBSPStep() *TextStep {
	replacer := strings.NewReplacer("&nbsp;", " ", "\u00a0", " ")
	return NewTextStep(StepNBSP, SideExpected, replacer.Replace)
}

// NewBackslashStep doubles every run of backslashes on both sides, so a
// \n typed inside a string literal survives as text instead of being read
// as a line break of the expected answer.
func NewBackslashStep() *TextStep {
	return NewTextStep(StepBackslashes, SideBoth, DoubleBackslashes)
}

// NewStripPreStep removes <pre> and </pre> tags from the expected answer.
func NewStripPreStep() *TextStep {
	return NewTextStep(StepStripPre, SideExpected, func(text string) string {
		return prePattern.ReplaceAllString(text, "")
	})
}

// NewDropBlankLinesStep right-trims every line and drops blank lines on
// both sides.
func NewDropBlankLinesStep() *TextStep {
	return NewTextStep(StepDropBlankLines, SideBoth, DropBlankLines)
}

// NewTrimStep trims surrounding whitespace on both sides.
func NewTrimStep() *TextStep {
	return NewTextStep(StepTrim, SideBoth, strings.TrimSpace)
}

// CommentStep removes source comments from both sides.
type CommentStep struct {
	tag    language.Tag
	logger *slog.Logger
}

// CommentStepOption configures a CommentStep.
type CommentStepOption func(*CommentStep)

// WithCommentLogger sets a custom logger for the comment step.
func WithCommentLogger(logger *slog.Logger) CommentStepOption {
	return func(s *CommentStep) {
		s.logger = logger
	}
}

// NewCommentStep creates a step that strips comments written in tag.
func NewCommentStep(tag language.Tag, opts ...CommentStepOption) *CommentStep {
	s := &CommentStep{
		tag:    tag,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *CommentStep) Name() string {
	return StepStripComments
}

// Do strips comments from both sides of sub.
func (s *CommentStep) Do(_ context.Context, sub *model.Submission) error {
	if s.tag == language.None {
		s.logger.Debug("comment stripping disabled")
		return nil
	}
	sub.Expected = comment.Strip(sub.Expected, s.tag)
	sub.Typed = comment.Strip(sub.Typed, s.tag)
	return nil
}

// NormalizeLineEndings converts CRLF and lone CR to LF.
func NormalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// DoubleBackslashes replaces each run of n backslashes with 2n backslashes.
func DoubleBackslashes(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}
	return backslashRun.ReplaceAllStringFunc(text, func(run string) string {
		return run + run
	})
}

// DropBlankLines right-trims every line and removes lines left empty.
func DropBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\v\f\u00a0")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// NewDefault builds the standard preparation pipeline for tag.
func NewDefault(tag language.Tag, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewLineEndingsStep(),
		NewMarkupBreaksStep(),
		NewNBSPStep(),
		NewBackslashStep(),
		NewCommentStep(tag, WithCommentLogger(p.logger)),
		NewStripPreStep(),
		NewDropBlankLinesStep(),
		NewTrimStep(),
	)
	return p
}
