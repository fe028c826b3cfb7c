package customid

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateUUID(t *testing.T) {
	valid := []string{
		"550e8400-e29b-41d4-a716-446655440000",
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"6BA7B810-9DAD-11D1-80B4-00C04FD430C8",
		"550e8400e29b41d4a716446655440000",
		"  550e8400-e29b-41d4-a716-446655440000\n",
	}
	for _, s := range valid {
		if err := ValidateUUID(s); err != nil {
			t.Errorf("ValidateUUID(%q): unexpected error %v", s, err)
		}
	}

	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmptyInput},
		{"   ", ErrEmptyInput},
		{"not-a-uuid", ErrInvalidFormat},
		{"invalid-uuid", ErrInvalidFormat},
		{"550e8400-e29b-41d4-a716", ErrInvalidFormat},
		{"550e8400-e29b-41d4-a716-446655440000-extra", ErrInvalidFormat},
		{"550e8400e29b41d4a71644665544000", ErrInvalidFormat},
		{"550e8400e29b41d4a7164466554400000", ErrInvalidFormat},
		{"g50e8400-e29b-41d4-a716-446655440000", ErrInvalidFormat},
		{"{550e8400-e29b-41d4-a716-446655440000}", ErrInvalidFormat},
	}
	for _, tt := range tests {
		err := ValidateUUID(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("ValidateUUID(%q): got %v, want %v", tt.in, err, tt.want)
		}
		if !IsValidation(err) {
			t.Errorf("ValidateUUID(%q): expected ErrValidation, got %v", tt.in, err)
		}
	}
}

func TestValidateCustomID(t *testing.T) {
	valid := []string{
		"test123",
		"用户ID",
		"user@example.com",
		"a",
		strings.Repeat("a", 100),
		"\tpadded\n",
	}
	for _, s := range valid {
		if err := ValidateCustomID(s); err != nil {
			t.Errorf("ValidateCustomID(%q): unexpected error %v", s, err)
		}
	}

	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmptyInput},
		{"   ", ErrEmptyInput},
		{"\n\t", ErrEmptyInput},
		{strings.Repeat("a", 101), ErrTooLong},
		{"  " + strings.Repeat("a", 101) + "  ", ErrTooLong},
		{"a\x00b", ErrControlCharacter},
		{"test\nid", ErrControlCharacter},
		{"test\rid", ErrControlCharacter},
		{"test\tid", ErrControlCharacter},
	}
	for _, tt := range tests {
		err := ValidateCustomID(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("ValidateCustomID(%q): got %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestValidateCustomIDLengthInBytes(t *testing.T) {
	// 34 three-byte runes exceed 100 bytes.
	if err := ValidateCustomID(strings.Repeat("用", 33)); err != nil {
		t.Errorf("99 bytes: unexpected error %v", err)
	}
	if err := ValidateCustomID(strings.Repeat("用", 34)); !errors.Is(err, ErrTooLong) {
		t.Errorf("102 bytes: got %v, want ErrTooLong", err)
	}
}

func TestValidateEncryptedID(t *testing.T) {
	valid := []string{
		"SGVsbG8=",
		"SGVsbG8gV29ybGQ=",
		"YWJjZGVmZ2hpams=",
		"00",
		"a+/=",
		" 00SGVsbG8= ",
	}
	for _, s := range valid {
		if err := ValidateEncryptedID(s); err != nil {
			t.Errorf("ValidateEncryptedID(%q): unexpected error %v", s, err)
		}
	}

	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmptyInput},
		{"  ", ErrEmptyInput},
		{"a", ErrTooShort},
		{" a ", ErrTooShort},
		{"bad!token", ErrInvalidCharacters},
		{"invalid@#$%", ErrInvalidCharacters},
		{"00SGVs bG8=", ErrInvalidCharacters},
		{"00SGVs-bG8_", ErrInvalidCharacters},
		{"00SGVsbG8=\x00", ErrInvalidCharacters},
	}
	for _, tt := range tests {
		err := ValidateEncryptedID(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("ValidateEncryptedID(%q): got %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestValidationIdempotent(t *testing.T) {
	inputs := []string{"", "a", "alice", "bad!token", "SGVsbG8=", testSeed, "not-a-uuid", strings.Repeat("a", 101)}
	validators := map[string]func(string) error{
		"uuid":         ValidateUUID,
		"custom id":    ValidateCustomID,
		"encrypted id": ValidateEncryptedID,
	}

	for name, validate := range validators {
		for _, in := range inputs {
			first, second := validate(in), validate(in)
			if (first == nil) != (second == nil) {
				t.Fatalf("%s(%q): results differ: %v vs %v", name, in, first, second)
			}
			if first != nil && first.Error() != second.Error() {
				t.Errorf("%s(%q): messages differ: %q vs %q", name, in, first, second)
			}
		}
	}
}

func TestValidationErrorFields(t *testing.T) {
	err := ValidateCustomID(strings.Repeat("a", 101))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Field != "custom id" {
		t.Errorf("Field: got %q, want %q", verr.Field, "custom id")
	}
	if verr.Reason != ErrTooLong {
		t.Errorf("Reason: got %v, want %v", verr.Reason, ErrTooLong)
	}
	if !strings.HasPrefix(err.Error(), "custom id: ") {
		t.Errorf("Error(): got %q", err.Error())
	}
}
