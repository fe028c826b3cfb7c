package customid

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"
)

// MaxCustomIDLen is the maximum length in bytes of a trimmed custom ID.
const MaxCustomIDLen = 100

// Validation error codes carried by the rule errors below.
const (
	codeEmpty             = "customid_empty"
	codeFormat            = "customid_format"
	codeTooLong           = "customid_too_long"
	codeTooShort          = "customid_too_short"
	codeControlCharacter  = "customid_control_character"
	codeInvalidCharacters = "customid_invalid_characters"
)

var codeErrors = map[string]error{
	codeEmpty:             ErrEmptyInput,
	codeFormat:            ErrInvalidFormat,
	codeTooLong:           ErrTooLong,
	codeTooShort:          ErrTooShort,
	codeControlCharacter:  ErrControlCharacter,
	codeInvalidCharacters: ErrInvalidCharacters,
}

var (
	// uuidStandardRegex matches the hyphenated 8-4-4-4-12 UUID form.
	uuidStandardRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

	// uuidMachineIDRegex matches the 32 hex digit form of /etc/machine-id.
	uuidMachineIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{32}$`)

	encryptedIDRegex = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
)

// Rule sets are built once and only read afterwards.
var (
	uuidRules = []validation.Rule{
		validation.Required.ErrorObject(validation.NewError(codeEmpty, "must not be empty")),
		validation.By(uuidShape),
	}

	customIDRules = []validation.Rule{
		validation.Required.ErrorObject(validation.NewError(codeEmpty, "must not be empty")),
		validation.Length(0, MaxCustomIDLen).
			ErrorObject(validation.NewError(codeTooLong, "must be at most 100 bytes long")),
		validation.By(noControlCharacters),
	}

	encryptedIDRules = []validation.Rule{
		validation.Required.ErrorObject(validation.NewError(codeEmpty, "must not be empty")),
		validation.Length(PrefixLen, 0).
			ErrorObject(validation.NewError(codeTooShort, "must be at least 2 characters long")),
		validation.Match(encryptedIDRegex).
			ErrorObject(validation.NewError(codeInvalidCharacters, "must only contain base64 characters (A-Z a-z 0-9 + / =)")),
	}
)

// ValidationError describes why an input was rejected.
// It unwraps to ErrValidation and to one of ErrEmptyInput, ErrInvalidFormat, ErrTooLong,
// ErrTooShort, ErrControlCharacter or ErrInvalidCharacters.
type ValidationError struct {
	// Field names the rejected input: "uuid", "custom id" or "encrypted id".
	Field string

	// Reason is the sentinel for the failed rule.
	Reason error

	// Message is a human readable explanation.
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap exposes both ErrValidation and the rule sentinel to errors.Is.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Reason}
}

// ValidateUUID checks that s is a hyphenated UUID or a 32 hex digit machine ID,
// ignoring surrounding whitespace.
func ValidateUUID(s string) error {
	return check("uuid", s, uuidRules)
}

// ValidateCustomID checks that s is non-empty, at most MaxCustomIDLen bytes after trimming,
// and free of NUL, CR, LF and TAB. Non-ASCII text is allowed.
func ValidateCustomID(s string) error {
	return check("custom id", s, customIDRules)
}

// ValidateEncryptedID checks that s is at least PrefixLen characters after trimming and only
// contains base64 characters. It neither strips the prefix nor decodes the body.
func ValidateEncryptedID(s string) error {
	return check("encrypted id", s, encryptedIDRules)
}

func check(field, s string, rules []validation.Rule) error {
	err := validation.Validate(strings.TrimSpace(s), rules...)
	if err == nil {
		return nil
	}

	var verr validation.Error
	if errors.As(err, &verr) {
		if reason, ok := codeErrors[verr.Code()]; ok {
			return &ValidationError{Field: field, Reason: reason, Message: verr.Message()}
		}
	}
	return &ValidationError{Field: field, Reason: ErrInvalidFormat, Message: err.Error()}
}

func uuidShape(value any) error {
	s, _ := value.(string)
	if uuidStandardRegex.MatchString(s) || uuidMachineIDRegex.MatchString(s) {
		return nil
	}
	return validation.NewError(codeFormat,
		"must be a UUID (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx) or a 32 character hex machine ID")
}

func noControlCharacters(value any) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, "\x00\n\r\t") {
		return validation.NewError(codeControlCharacter, "must not contain NUL, newline, carriage return or tab")
	}
	return nil
}
