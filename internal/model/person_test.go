package model

import "testing"

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "single word", input: "Alice", want: true},
		{name: "name with spaces", input: "Alice Tan Wei Ling", want: true},
		{name: "digits allowed", input: "Alice 2nd", want: true},
		{name: "empty", input: "", want: false},
		{name: "blank", input: " ", want: false},
		{name: "leading space", input: " Alice", want: false},
		{name: "punctuation", input: "Alice-Tan", want: false},
		{name: "asterisk", input: "Alice*", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidName(tt.input); got != tt.want {
				t.Errorf("IsValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewName(t *testing.T) {
	name, err := NewName("Alice Tan")
	if err != nil {
		t.Fatalf("NewName() error = %v", err)
	}
	if name.String() != "Alice Tan" {
		t.Errorf("String() = %q, want %q", name.String(), "Alice Tan")
	}

	if _, err := NewName("Alice*"); err == nil {
		t.Fatal("NewName() expected error for invalid name")
	} else if err.Error() != NameConstraints {
		t.Errorf("error = %q, want %q", err.Error(), NameConstraints)
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "three digits", input: "911", want: true},
		{name: "long number", input: "93121534", want: true},
		{name: "too short", input: "91", want: false},
		{name: "empty", input: "", want: false},
		{name: "letters", input: "phone", want: false},
		{name: "internal space", input: "9312 1534", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPhone(tt.input); got != tt.want {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain", input: "alice@example.com", want: true},
		{name: "separators in local part", input: "alice_tan+ta@u.nus.edu", want: true},
		{name: "minimal domain", input: "a@b", want: true},
		{name: "missing at", input: "alice.example.com", want: false},
		{name: "missing local part", input: "@example.com", want: false},
		{name: "missing domain", input: "alice@", want: false},
		{name: "trailing separator", input: "alice-@example.com", want: false},
		{name: "domain starts with hyphen", input: "alice@-example.com", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.input); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "any printable value", input: "Blk 456, Den Road, #01-355", want: true},
		{name: "single char", input: "-", want: true},
		{name: "empty", input: "", want: false},
		{name: "leading space", input: " Blk 456", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidAddress(tt.input); got != tt.want {
				t.Errorf("IsValidAddress(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func testPerson(t *testing.T, name string) Person {
	t.Helper()
	n, err := NewName(name)
	if err != nil {
		t.Fatalf("NewName: %v", err)
	}
	phone, err := NewPhone("93121534")
	if err != nil {
		t.Fatalf("NewPhone: %v", err)
	}
	email, err := NewEmail("alice@example.com")
	if err != nil {
		t.Fatalf("NewEmail: %v", err)
	}
	address, err := NewAddress("Blk 456, Den Road, #01-355")
	if err != nil {
		t.Fatalf("NewAddress: %v", err)
	}
	return NewPerson(n, phone, email, address, nil)
}

func TestPersonIsSamePerson(t *testing.T) {
	alice := testPerson(t, "Alice")
	bob := testPerson(t, "Bob")

	if !alice.IsSamePerson(alice) {
		t.Error("IsSamePerson should be reflexive")
	}
	if alice.IsSamePerson(bob) {
		t.Error("IsSamePerson should be false for different names")
	}

	// Same name, different data fields: still the same person.
	name, _ := NewName("Alice")
	phone, _ := NewPhone("999")
	email, _ := NewEmail("other@example.com")
	address, _ := NewAddress("elsewhere")
	other := NewPerson(name, phone, email, address, nil)
	if !alice.IsSamePerson(other) {
		t.Error("IsSamePerson should compare names only")
	}
	if alice.Equals(other) {
		t.Error("Equals should compare all fields")
	}
}

func TestPersonEqualsIncludesTags(t *testing.T) {
	name, _ := NewName("Alice")
	phone, _ := NewPhone("93121534")
	email, _ := NewEmail("alice@example.com")
	address, _ := NewAddress("Blk 456")
	friend, _ := NewTag("friend")

	tagged := NewPerson(name, phone, email, address, map[Tag]struct{}{friend: {}})
	untagged := NewPerson(name, phone, email, address, nil)

	if tagged.Equals(untagged) {
		t.Error("Equals should include the tag set")
	}
	if !tagged.Equals(NewPerson(name, phone, email, address, map[Tag]struct{}{friend: {}})) {
		t.Error("Equals should be true for identical field values")
	}
}

func TestNewPersonCopiesTagSet(t *testing.T) {
	name, _ := NewName("Alice")
	phone, _ := NewPhone("93121534")
	email, _ := NewEmail("alice@example.com")
	address, _ := NewAddress("Blk 456")
	friend, _ := NewTag("friend")

	tags := map[Tag]struct{}{friend: {}}
	p := NewPerson(name, phone, email, address, tags)

	// Mutating the caller's map must not affect the constructed person.
	delete(tags, friend)
	if !p.HasTag(friend) {
		t.Error("NewPerson should copy the tag set")
	}
}
