package customid

import "errors"

// Validation errors. Each validator failure wraps exactly one of these together with ErrValidation.
var (
	// ErrValidation is wrapped by every input validation failure.
	ErrValidation = errors.New("customid: validation failed")

	// ErrEmptyInput is returned when an input is empty after trimming whitespace.
	ErrEmptyInput = errors.New("customid: input is empty")

	// ErrInvalidFormat is returned when a seed does not have a UUID or machine-id shape,
	// or when a token is too short to carry the scheme prefix.
	ErrInvalidFormat = errors.New("customid: invalid format")

	// ErrTooLong is returned when a custom ID exceeds MaxCustomIDLen bytes.
	ErrTooLong = errors.New("customid: input too long")

	// ErrTooShort is returned when a token is shorter than PrefixLen characters.
	ErrTooShort = errors.New("customid: input too short")

	// ErrControlCharacter is returned when a custom ID contains NUL, CR, LF or TAB.
	ErrControlCharacter = errors.New("customid: input contains control characters")

	// ErrInvalidCharacters is returned when a token contains characters outside the base64 alphabet.
	ErrInvalidCharacters = errors.New("customid: input contains invalid characters")
)

// Transform errors.
var (
	// ErrDecode is returned when a token body is not valid standard base64.
	ErrDecode = errors.New("customid: invalid base64 token body")

	// ErrDecryptionFailed is returned when a sealed token cannot be opened (wrong seed, tampered data).
	ErrDecryptionFailed = errors.New("customid: decryption failed")

	// ErrInvalidEncoding is returned when decrypted bytes are not valid UTF-8.
	ErrInvalidEncoding = errors.New("customid: decrypted id is not valid UTF-8")

	// ErrNilProvider is returned when a constructor is given a nil SeedProvider.
	ErrNilProvider = errors.New("customid: seed provider is nil")
)

// IsValidation returns true if the error is or wraps ErrValidation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsEmptyInput returns true if the error is or wraps ErrEmptyInput.
func IsEmptyInput(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}

// IsInvalidFormat returns true if the error is or wraps ErrInvalidFormat.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsDecode returns true if the error is or wraps ErrDecode.
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsDecryptionFailed returns true if the error is or wraps ErrDecryptionFailed.
func IsDecryptionFailed(err error) bool {
	return errors.Is(err, ErrDecryptionFailed)
}

// IsInvalidEncoding returns true if the error is or wraps ErrInvalidEncoding.
func IsInvalidEncoding(err error) bool {
	return errors.Is(err, ErrInvalidEncoding)
}
