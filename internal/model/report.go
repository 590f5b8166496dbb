package model

import "time"

// Report is the outcome of one grading run.
type Report struct {
	// GeneratedAt is when grading finished.
	GeneratedAt time.Time `json:"generated_at"`

	// Results are in deck order.
	Results []*Result `json:"results"`
}

// NewReport creates a report for results stamped with the current time.
func NewReport(results []*Result) *Report {
	if results == nil {
		results = []*Result{}
	}
	return &Report{
		GeneratedAt: time.Now(),
		Results:     results,
	}
}

// Summary aggregates a report.
type Summary struct {
	// Total is the number of graded cards.
	Total int `json:"total"`

	// Counts is the number of cards per verdict.
	Counts map[Verdict]int `json:"counts"`

	// AverageScore is the mean score over all cards.
	AverageScore float64 `json:"average_score"`

	// Warnings is the total number of warnings.
	Warnings int `json:"warnings"`
}

// Summary counts verdicts and averages scores.
func (r *Report) Summary() Summary {
	s := Summary{
		Total:  len(r.Results),
		Counts: make(map[Verdict]int, len(AllVerdicts())),
	}
	for _, v := range AllVerdicts() {
		s.Counts[v] = 0
	}
	if s.Total == 0 {
		return s
	}

	var total float64
	for _, res := range r.Results {
		s.Counts[res.Verdict]++
		s.Warnings += len(res.Warnings)
		total += res.Score
	}
	s.AverageScore = total / float64(s.Total)
	return s
}

// Correct reports whether every card was graded correct.
func (s Summary) Correct() bool {
	return s.Total > 0 && s.Counts[VerdictCorrect] == s.Total
}
