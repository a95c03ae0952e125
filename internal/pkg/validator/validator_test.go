package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-06-03"); !ok {
		t.Error("IsValidDate(2024-06-03) = false, want true")
	}
	for _, s := range []string{"03-06-2024", "2024/06/03", "2024-13-01", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidSlackID(t *testing.T) {
	valid := []string{"U01ABCDE2F", "C05TPM3SH8X", " U01ABCDE2F "}
	invalid := []string{"", "u01abcde2f", "X05TPM3SH8X", "U01", "not-an-id"}
	for _, id := range valid {
		if !IsValidSlackID(id) {
			t.Errorf("IsValidSlackID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidSlackID(id) {
			t.Errorf("IsValidSlackID(%q) = true, want false", id)
		}
	}
}
