// Package parser converts raw user-supplied strings into validated
// model values. Every function trims leading and trailing whitespace,
// applies the target type's validation predicate, and returns either a
// constructed value or a *ParseError carrying that type's constraint
// message. Parsing is pure and idempotent: reparsing a value's
// canonical form yields an equal value.
package parser

import (
	"strconv"
	"strings"

	"github.com/example/tally/internal/model"
)

// MessageInvalidIndex is returned when a one-based index string is not
// a non-zero unsigned integer.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// MessageGradedTestArity is returned when a graded-test input does not
// split into exactly five components.
const MessageGradedTestArity = "Invalid graded test format. Expected 5 components."

// ParseIndex parses a one-based index string into a zero-based Index.
// Non-numeric, zero, and negative input all fail with InvalidIndex.
func ParseIndex(oneBased string) (model.Index, error) {
	trimmed := strings.TrimSpace(oneBased)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 {
		return model.Index{}, &ParseError{Kind: InvalidIndex, Message: MessageInvalidIndex}
	}
	return model.IndexFromOneBased(n), nil
}

// ParseName parses a raw string into a Name.
func ParseName(raw string) (model.Name, error) {
	name, err := model.NewName(strings.TrimSpace(raw))
	if err != nil {
		return model.Name{}, formatViolation(err.Error())
	}
	return name, nil
}

// ParseNames parses an ordered sequence of raw strings into a set of
// Names. The whole batch fails on the first invalid element; duplicates
// collapse by value.
func ParseNames(raws []string) (map[model.Name]struct{}, error) {
	if raws == nil {
		return nil, missingInput("names")
	}
	names := make(map[model.Name]struct{}, len(raws))
	for _, raw := range raws {
		name, err := ParseName(raw)
		if err != nil {
			return nil, err
		}
		names[name] = struct{}{}
	}
	return names, nil
}

// ParsePhone parses a raw string into a Phone.
func ParsePhone(raw string) (model.Phone, error) {
	phone, err := model.NewPhone(strings.TrimSpace(raw))
	if err != nil {
		return model.Phone{}, formatViolation(err.Error())
	}
	return phone, nil
}

// ParseEmail parses a raw string into an Email.
func ParseEmail(raw string) (model.Email, error) {
	email, err := model.NewEmail(strings.TrimSpace(raw))
	if err != nil {
		return model.Email{}, formatViolation(err.Error())
	}
	return email, nil
}

// ParseAddress parses a raw string into an Address.
func ParseAddress(raw string) (model.Address, error) {
	address, err := model.NewAddress(strings.TrimSpace(raw))
	if err != nil {
		return model.Address{}, formatViolation(err.Error())
	}
	return address, nil
}

// ParseTag parses a raw string into a Tag.
func ParseTag(raw string) (model.Tag, error) {
	tag, err := model.NewTag(strings.TrimSpace(raw))
	if err != nil {
		return model.Tag{}, formatViolation(err.Error())
	}
	return tag, nil
}

// ParseTags parses an ordered sequence of raw strings into a set of
// Tags. All-or-nothing, duplicates collapse by value.
func ParseTags(raws []string) (map[model.Tag]struct{}, error) {
	if raws == nil {
		return nil, missingInput("tags")
	}
	tags := make(map[model.Tag]struct{}, len(raws))
	for _, raw := range raws {
		tag, err := ParseTag(raw)
		if err != nil {
			return nil, err
		}
		tags[tag] = struct{}{}
	}
	return tags, nil
}

// ParseTaskName parses a raw string into a TaskName.
func ParseTaskName(raw string) (model.TaskName, error) {
	name, err := model.NewTaskName(strings.TrimSpace(raw))
	if err != nil {
		return model.TaskName{}, formatViolation(err.Error())
	}
	return name, nil
}

// ParseTaskDescription parses a raw string into a TaskDescription.
func ParseTaskDescription(raw string) (model.TaskDescription, error) {
	description, err := model.NewTaskDescription(strings.TrimSpace(raw))
	if err != nil {
		return model.TaskDescription{}, formatViolation(err.Error())
	}
	return description, nil
}

// ParseTaskPriority parses a raw string into a TaskPriority.
func ParseTaskPriority(raw string) (model.TaskPriority, error) {
	priority, err := model.NewTaskPriority(strings.TrimSpace(raw))
	if err != nil {
		return model.TaskPriority{}, formatViolation(err.Error())
	}
	return priority, nil
}

// ParseSessionNumber parses a raw string into a SessionNumber.
func ParseSessionNumber(raw string) (model.SessionNumber, error) {
	number, err := model.NewSessionNumber(strings.TrimSpace(raw))
	if err != nil {
		return model.SessionNumber{}, formatViolation(err.Error())
	}
	return number, nil
}

// ParseReadingAssessment parses a raw string into a ReadingAssessment.
func ParseReadingAssessment(raw string) (model.ReadingAssessment, error) {
	score, err := model.NewReadingAssessment(strings.TrimSpace(raw))
	if err != nil {
		return model.ReadingAssessment{}, formatViolation(err.Error())
	}
	return score, nil
}

// ParseMidTerms parses a raw string into a MidTerms score.
func ParseMidTerms(raw string) (model.MidTerms, error) {
	score, err := model.NewMidTerms(strings.TrimSpace(raw))
	if err != nil {
		return model.MidTerms{}, formatViolation(err.Error())
	}
	return score, nil
}

// ParseFinals parses a raw string into a Finals score.
func ParseFinals(raw string) (model.Finals, error) {
	score, err := model.NewFinals(strings.TrimSpace(raw))
	if err != nil {
		return model.Finals{}, formatViolation(err.Error())
	}
	return score, nil
}

// ParsePracticalExam parses a raw string into a PracticalExam score.
func ParsePracticalExam(raw string) (model.PracticalExam, error) {
	score, err := model.NewPracticalExam(strings.TrimSpace(raw))
	if err != nil {
		return model.PracticalExam{}, formatViolation(err.Error())
	}
	return score, nil
}

// ParseGradedTest parses a five-component graded-test string. The
// trimmed input is split on runs of whitespace; the component count
// must be exactly five, assigned positionally: reading assessment 1,
// reading assessment 2, mid-terms, finals, practical exam.
func ParseGradedTest(raw string) (model.GradedTest, error) {
	components := strings.Fields(strings.TrimSpace(raw))
	if len(components) != model.GradedTestComponentCount {
		return model.GradedTest{}, &ParseError{Kind: ArityViolation, Message: MessageGradedTestArity}
	}

	ra1, err := ParseReadingAssessment(components[0])
	if err != nil {
		return model.GradedTest{}, err
	}
	ra2, err := ParseReadingAssessment(components[1])
	if err != nil {
		return model.GradedTest{}, err
	}
	midTerms, err := ParseMidTerms(components[2])
	if err != nil {
		return model.GradedTest{}, err
	}
	finals, err := ParseFinals(components[3])
	if err != nil {
		return model.GradedTest{}, err
	}
	practicalExam, err := ParsePracticalExam(components[4])
	if err != nil {
		return model.GradedTest{}, err
	}

	return model.GradedTest{
		ReadingAssessment1: ra1,
		ReadingAssessment2: ra2,
		MidTerms:           midTerms,
		Finals:             finals,
		PracticalExam:      practicalExam,
	}, nil
}

// ParseGradedTests parses an ordered sequence of raw graded-test
// strings into a set. All-or-nothing, duplicates collapse by value.
func ParseGradedTests(raws []string) (map[model.GradedTest]struct{}, error) {
	if raws == nil {
		return nil, missingInput("graded tests")
	}
	tests := make(map[model.GradedTest]struct{}, len(raws))
	for _, raw := range raws {
		test, err := ParseGradedTest(raw)
		if err != nil {
			return nil, err
		}
		tests[test] = struct{}{}
	}
	return tests, nil
}
