package model

import (
	"errors"
	"regexp"
	"sort"
)

// SessionNumberConstraints is the message surfaced when a session
// number fails validation.
const SessionNumberConstraints = "Session numbers should be positive integers without leading zeros"

var sessionNumberRegexp = regexp.MustCompile(`^[1-9][0-9]*$`)

// SessionNumber identifies an attendance session.
type SessionNumber struct {
	value string
}

// IsValidSessionNumber reports whether s satisfies the session number format.
func IsValidSessionNumber(s string) bool {
	return sessionNumberRegexp.MatchString(s)
}

// NewSessionNumber constructs a SessionNumber, or fails with
// SessionNumberConstraints.
func NewSessionNumber(s string) (SessionNumber, error) {
	if !IsValidSessionNumber(s) {
		return SessionNumber{}, errors.New(SessionNumberConstraints)
	}
	return SessionNumber{value: s}, nil
}

func (n SessionNumber) String() string {
	return n.value
}

// Session is an attendance session: a session number plus the set of
// students present. The identity field is the session number.
type Session struct {
	number   SessionNumber
	students map[Name]struct{}
}

// NewSession builds a Session. The student set is copied.
func NewSession(number SessionNumber, students map[Name]struct{}) Session {
	owned := make(map[Name]struct{}, len(students))
	for n := range students {
		owned[n] = struct{}{}
	}
	return Session{number: number, students: owned}
}

func (s Session) Number() SessionNumber { return s.number }

// Students returns the attendees sorted by name.
func (s Session) Students() []Name {
	names := make([]Name, 0, len(s.students))
	for n := range s.students {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].String() < names[j].String() })
	return names
}

// HasStudent reports whether the student attended this session.
func (s Session) HasStudent(n Name) bool {
	_, ok := s.students[n]
	return ok
}

// WithStudent returns a copy of the session with the student added.
func (s Session) WithStudent(n Name) Session {
	next := NewSession(s.number, s.students)
	next.students[n] = struct{}{}
	return next
}

// IsSameSession reports whether both sessions are logically the same
// record: session numbers match by value.
func (s Session) IsSameSession(other Session) bool {
	return s.number == other.number
}

// Equals reports full equality over the session number and the
// student set.
func (s Session) Equals(other Session) bool {
	if s.number != other.number || len(s.students) != len(other.students) {
		return false
	}
	for n := range s.students {
		if _, ok := other.students[n]; !ok {
			return false
		}
	}
	return true
}
