package model

import (
	"errors"
	"regexp"
)

// TagConstraints is the message surfaced when a tag fails validation.
const TagConstraints = "Tag names should be alphanumeric"

var tagRegexp = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Tag is a classification label attached to a student record.
type Tag struct {
	value string
}

// IsValidTag reports whether s satisfies the tag format.
func IsValidTag(s string) bool {
	return tagRegexp.MatchString(s)
}

// NewTag constructs a Tag, or fails with TagConstraints.
func NewTag(s string) (Tag, error) {
	if !IsValidTag(s) {
		return Tag{}, errors.New(TagConstraints)
	}
	return Tag{value: s}, nil
}

func (t Tag) String() string {
	return t.value
}
