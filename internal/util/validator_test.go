package util

import (
	"strings"
	"testing"
)

// TestValidateName_Valid accepts ordinary display names
func TestValidateName_Valid(t *testing.T) {
	testCases := []string{"Alice", "José da Silva", "a"}

	for _, name := range testCases {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) error = %v, want nil", name, err)
		}
	}
}

// TestValidateName_Invalid rejects blank names
func TestValidateName_Invalid(t *testing.T) {
	testCases := []string{"", "   ", "\t\n"}

	for _, name := range testCases {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) error = nil, want error", name)
		}
	}
}

// TestValidatePassword checks the bcrypt byte limit
func TestValidatePassword(t *testing.T) {
	validCases := []string{"pw", strings.Repeat("p", 72)}
	for _, pw := range validCases {
		if err := ValidatePassword(pw); err != nil {
			t.Errorf("ValidatePassword(len %d) error = %v, want nil", len(pw), err)
		}
	}

	invalidCases := []string{
		"",
		strings.Repeat("p", 73),
		// 40 runes but 80 bytes
		strings.Repeat("é", 40),
	}
	for _, pw := range invalidCases {
		if err := ValidatePassword(pw); err == nil {
			t.Errorf("ValidatePassword(len %d) error = nil, want error", len(pw))
		}
	}
}

// TestValidateMealFields checks the length limits
func TestValidateMealFields(t *testing.T) {
	if err := ValidateMealName("Lunch"); err != nil {
		t.Errorf("ValidateMealName() error = %v, want nil", err)
	}
	if err := ValidateMealName(""); err != nil {
		t.Errorf("ValidateMealName(\"\") error = %v, want nil", err)
	}
	if err := ValidateMealName(strings.Repeat("x", 256)); err == nil {
		t.Error("ValidateMealName() with long string error = nil, want error")
	}
	if err := ValidateDescription("rice and beans"); err != nil {
		t.Errorf("ValidateDescription() error = %v, want nil", err)
	}
	if err := ValidateDescription(strings.Repeat("x", 2001)); err == nil {
		t.Error("ValidateDescription() with long string error = nil, want error")
	}
}

// TestParseInDiet
func TestParseInDiet(t *testing.T) {
	testCases := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"T", true, false},
		{"F", false, false},
		{"", false, false},
		{"t", false, true},
		{"true", false, true},
		{"1", false, true},
	}

	for _, tc := range testCases {
		got, err := ParseInDiet(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseInDiet(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseInDiet(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
