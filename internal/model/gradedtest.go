package model

import (
	"errors"
	"regexp"
	"strings"
)

// Graded-test sub-score messages. Each score field carries its own
// message even though the format is shared, so the CLI can name the
// offending component.
const (
	ReadingAssessmentConstraints = "Reading assessment scores should be '-' or a non-negative number"
	MidTermsConstraints          = "Mid-terms scores should be '-' or a non-negative number"
	FinalsConstraints            = "Finals scores should be '-' or a non-negative number"
	PracticalExamConstraints     = "Practical exam scores should be '-' or a non-negative number"
)

// GradedTestComponentCount is the number of whitespace-separated
// sub-scores a graded-test input must split into.
const GradedTestComponentCount = 5

// A score is either "-" (ungraded) or a non-negative number.
var scoreRegexp = regexp.MustCompile(`^(-|[0-9]+(\.[0-9]+)?)$`)

// ReadingAssessment is a reading-assessment sub-score.
type ReadingAssessment struct {
	value string
}

// IsValidReadingAssessment reports whether s satisfies the score format.
func IsValidReadingAssessment(s string) bool {
	return scoreRegexp.MatchString(s)
}

// NewReadingAssessment constructs a ReadingAssessment, or fails with
// ReadingAssessmentConstraints.
func NewReadingAssessment(s string) (ReadingAssessment, error) {
	if !IsValidReadingAssessment(s) {
		return ReadingAssessment{}, errors.New(ReadingAssessmentConstraints)
	}
	return ReadingAssessment{value: s}, nil
}

func (r ReadingAssessment) String() string {
	return r.value
}

// MidTerms is a mid-terms sub-score.
type MidTerms struct {
	value string
}

// IsValidMidTerms reports whether s satisfies the score format.
func IsValidMidTerms(s string) bool {
	return scoreRegexp.MatchString(s)
}

// NewMidTerms constructs a MidTerms, or fails with MidTermsConstraints.
func NewMidTerms(s string) (MidTerms, error) {
	if !IsValidMidTerms(s) {
		return MidTerms{}, errors.New(MidTermsConstraints)
	}
	return MidTerms{value: s}, nil
}

func (m MidTerms) String() string {
	return m.value
}

// Finals is a finals sub-score.
type Finals struct {
	value string
}

// IsValidFinals reports whether s satisfies the score format.
func IsValidFinals(s string) bool {
	return scoreRegexp.MatchString(s)
}

// NewFinals constructs a Finals, or fails with FinalsConstraints.
func NewFinals(s string) (Finals, error) {
	if !IsValidFinals(s) {
		return Finals{}, errors.New(FinalsConstraints)
	}
	return Finals{value: s}, nil
}

func (f Finals) String() string {
	return f.value
}

// PracticalExam is a practical-exam sub-score.
type PracticalExam struct {
	value string
}

// IsValidPracticalExam reports whether s satisfies the score format.
func IsValidPracticalExam(s string) bool {
	return scoreRegexp.MatchString(s)
}

// NewPracticalExam constructs a PracticalExam, or fails with
// PracticalExamConstraints.
func NewPracticalExam(s string) (PracticalExam, error) {
	if !IsValidPracticalExam(s) {
		return PracticalExam{}, errors.New(PracticalExamConstraints)
	}
	return PracticalExam{value: s}, nil
}

func (p PracticalExam) String() string {
	return p.value
}

// GradedTest aggregates a student's five fixed-position sub-scores.
// It is a comparable struct: equality covers all five fields.
type GradedTest struct {
	ReadingAssessment1 ReadingAssessment
	ReadingAssessment2 ReadingAssessment
	MidTerms           MidTerms
	Finals             Finals
	PracticalExam      PracticalExam
}

// String renders the canonical five-token form, which round-trips
// through the graded-test parser.
func (g GradedTest) String() string {
	return strings.Join([]string{
		g.ReadingAssessment1.String(),
		g.ReadingAssessment2.String(),
		g.MidTerms.String(),
		g.Finals.String(),
		g.PracticalExam.String(),
	}, " ")
}
