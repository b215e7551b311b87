// Package model contains the validated domain types for tally records.
// Every value type wraps a canonical, trimmed string behind an
// unexported field: validation runs before construction completes, so
// an invalid instance can never exist. Value types are comparable
// structs, so == is value equality and they work as map keys.
package model

import (
	"errors"
	"regexp"
	"sort"
)

// Constraint messages are part of the public contract. The CLI prints
// them verbatim on rejection, so the exact text must stay stable.
const (
	NameConstraints = "Names should only contain alphanumeric characters and spaces, and should not be blank"

	PhoneConstraints = "Phone numbers should only contain digits, and should be at least 3 digits long"

	EmailConstraints = "Emails should be of the format local-part@domain; " +
		"the local part may contain alphanumeric characters joined by +_.- separators, " +
		"and the domain must be alphanumeric labels separated by periods"

	AddressConstraints = "Addresses can take any value, and should not be blank"
)

var (
	nameRegexp    = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 ]*$`)
	phoneRegexp   = regexp.MustCompile(`^[0-9]{3,}$`)
	emailRegexp   = regexp.MustCompile(`^[a-zA-Z0-9]+([+_.-][a-zA-Z0-9]+)*@[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)*$`)
	addressRegexp = regexp.MustCompile(`^[^\s]`)
)

// Name is a student's display name.
type Name struct {
	value string
}

// IsValidName reports whether s satisfies the name format.
func IsValidName(s string) bool {
	return nameRegexp.MatchString(s)
}

// NewName constructs a Name, or fails with NameConstraints.
func NewName(s string) (Name, error) {
	if !IsValidName(s) {
		return Name{}, errors.New(NameConstraints)
	}
	return Name{value: s}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a contact phone number.
type Phone struct {
	value string
}

// IsValidPhone reports whether s satisfies the phone format.
func IsValidPhone(s string) bool {
	return phoneRegexp.MatchString(s)
}

// NewPhone constructs a Phone, or fails with PhoneConstraints.
func NewPhone(s string) (Phone, error) {
	if !IsValidPhone(s) {
		return Phone{}, errors.New(PhoneConstraints)
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string {
	return p.value
}

// Email is a contact email address.
type Email struct {
	value string
}

// IsValidEmail reports whether s satisfies the email format.
func IsValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// NewEmail constructs an Email, or fails with EmailConstraints.
func NewEmail(s string) (Email, error) {
	if !IsValidEmail(s) {
		return Email{}, errors.New(EmailConstraints)
	}
	return Email{value: s}, nil
}

func (e Email) String() string {
	return e.value
}

// Address is a contact address. Any non-blank value is accepted.
type Address struct {
	value string
}

// IsValidAddress reports whether s satisfies the address format.
func IsValidAddress(s string) bool {
	return addressRegexp.MatchString(s)
}

// NewAddress constructs an Address, or fails with AddressConstraints.
func NewAddress(s string) (Address, error) {
	if !IsValidAddress(s) {
		return Address{}, errors.New(AddressConstraints)
	}
	return Address{value: s}, nil
}

func (a Address) String() string {
	return a.value
}

// Person is a student record: contact fields plus a set of tags.
// The identity field is Name; all other fields are data fields.
// Persons are constructed once and replaced wholesale on edit.
type Person struct {
	name    Name
	phone   Phone
	email   Email
	address Address
	tags    map[Tag]struct{}
}

// NewPerson builds a Person. The tag set is copied, so callers keep
// ownership of the map they pass in.
func NewPerson(name Name, phone Phone, email Email, address Address, tags map[Tag]struct{}) Person {
	owned := make(map[Tag]struct{}, len(tags))
	for t := range tags {
		owned[t] = struct{}{}
	}
	return Person{name: name, phone: phone, email: email, address: address, tags: owned}
}

func (p Person) Name() Name       { return p.name }
func (p Person) Phone() Phone     { return p.phone }
func (p Person) Email() Email     { return p.email }
func (p Person) Address() Address { return p.address }

// Tags returns the person's tags sorted by name.
func (p Person) Tags() []Tag {
	tags := make([]Tag, 0, len(p.tags))
	for t := range p.tags {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
	return tags
}

// HasTag reports whether the person carries the given tag.
func (p Person) HasTag(t Tag) bool {
	_, ok := p.tags[t]
	return ok
}

// IsSamePerson reports whether both persons are logically the same
// record: names match by value. This is the duplicate-detection check,
// weaker than Equals.
func (p Person) IsSamePerson(other Person) bool {
	return p.name == other.name
}

// Equals reports full equality over every field, including the tag set.
func (p Person) Equals(other Person) bool {
	if p.name != other.name || p.phone != other.phone ||
		p.email != other.email || p.address != other.address {
		return false
	}
	if len(p.tags) != len(other.tags) {
		return false
	}
	for t := range p.tags {
		if _, ok := other.tags[t]; !ok {
			return false
		}
	}
	return true
}
