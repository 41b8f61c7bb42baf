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

func TestIsValidUsername(t *testing.T) {
	valid := []string{"john", "mary.anne", "staff_01", "a-b-c", "Kasun123"}
	invalid := []string{"", "ab", "has space", "semi;colon", "way@off", strings40x2()}
	for _, username := range valid {
		if !IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = false, want true", username)
		}
	}
	for _, username := range invalid {
		if IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = true, want false", username)
		}
	}
}

func strings40x2() string {
	s := ""
	for i := 0; i < 41; i++ {
		s += "a"
	}
	return s
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "amount", Message: "must be positive"},
		{Field: "month", Message: "is required"},
	}
	want := "amount: must be positive; month: is required"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	m := errs.ToMap()
	if m["amount"] != "must be positive" || m["month"] != "is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
