// Package customid turns a RustDesk custom ID into a machine-bound token and back.
//
// A token is the scheme prefix "00" followed by the standard base64 encoding of the
// custom ID sealed with NaCl secretbox. The key is the machine UUID (or 32 hex digit
// machine ID) zero-padded or truncated to 32 bytes and the nonce is all zeros, so the
// same ID and seed always produce the same token:
//
//	res := customid.EncryptID("alice", "550e8400-e29b-41d4-a716-446655440000")
//	ok, _ := res.(customid.EncryptSuccess)
//	token := ok.Token() // "00" + base64 body
//
//	res = customid.DecryptID(token, "550e8400-e29b-41d4-a716-446655440000")
//	if f, isFailure := res.(*customid.Failure); isFailure {
//	    // f.Kind, f.Detail, errors.Is(f, customid.ErrDecryptionFailed) ...
//	}
//
// Because the nonce is constant, sealing two different IDs under one seed does not
// give randomized-nonce confidentiality. This is a property of the token format.
package customid

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/awnumar/memguard"
)

// ErrorKind classifies a Failure.
type ErrorKind int

const (
	// KindUnknown is returned by KindOf for errors not produced by this package.
	KindUnknown ErrorKind = iota
	// KindValidation reports rejected input (see ValidationError).
	KindValidation
	// KindFormat reports a token too short to hold the scheme prefix.
	KindFormat
	// KindDecode reports a token body that is not valid base64.
	KindDecode
	// KindDecryption reports a token that does not open under the seed.
	KindDecryption
	// KindEncoding reports decrypted bytes that are not UTF-8 text.
	KindEncoding
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation error"
	case KindFormat:
		return "format error"
	case KindDecode:
		return "decode error"
	case KindDecryption:
		return "decryption error"
	case KindEncoding:
		return "encoding error"
	default:
		return "unknown error"
	}
}

// Result is the outcome of EncryptID or DecryptID.
// It is one of EncryptSuccess, DecryptSuccess or *Failure.
type Result interface {
	result()
}

// EncryptSuccess is returned by EncryptID.
type EncryptSuccess struct {
	// Original is the custom ID as passed in.
	Original string

	// TokenBody is the base64 body, without the scheme prefix.
	TokenBody string
}

// Token returns the full token: SchemeV0 followed by TokenBody.
func (r EncryptSuccess) Token() string {
	return FormatToken(r.TokenBody)
}

// DecryptSuccess is returned by DecryptID.
type DecryptSuccess struct {
	// Token is the token as passed in, prefix included.
	Token string

	// Original is the recovered custom ID.
	Original string
}

// Failure is returned when an operation cannot complete. It also implements error.
type Failure struct {
	Kind   ErrorKind
	Detail string

	// Err is the underlying error; errors.Is works through Failure.
	Err error
}

func (EncryptSuccess) result() {}
func (DecryptSuccess) result() {}
func (*Failure) result()       {}

func (f *Failure) Error() string {
	return f.Kind.String() + ": " + f.Detail
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Err returns r as an error if it is a *Failure, and nil otherwise.
func Err(r Result) error {
	if f, ok := r.(*Failure); ok {
		return f
	}
	return nil
}

// KindOf classifies err. Failures report their own Kind; bare errors from this
// package are mapped by sentinel.
func KindOf(err error) ErrorKind {
	var f *Failure
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &f):
		return f.Kind
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrInvalidFormat):
		return KindFormat
	case errors.Is(err, ErrDecode):
		return KindDecode
	case errors.Is(err, ErrDecryptionFailed):
		return KindDecryption
	case errors.Is(err, ErrInvalidEncoding):
		return KindEncoding
	default:
		return KindUnknown
	}
}

func fail(kind ErrorKind, err error) *Failure {
	return &Failure{Kind: kind, Detail: err.Error(), Err: err}
}

// EncryptID seals customID under a key derived from seed.
// The returned EncryptSuccess carries the token body; callers add the prefix with
// EncryptSuccess.Token or FormatToken.
func EncryptID(customID, seed string) Result {
	if err := ValidateCustomID(customID); err != nil {
		return fail(KindValidation, err)
	}
	if err := ValidateUUID(seed); err != nil {
		return fail(KindValidation, err)
	}

	key := DeriveKey(seed)
	defer memguard.WipeBytes(key[:])

	return EncryptSuccess{
		Original:  customID,
		TokenBody: EncodeBody(seal([]byte(customID), key)),
	}
}

// DecryptID recovers the custom ID from a full token (prefix included) and seed.
// The first PrefixLen characters of token are dropped without inspection.
func DecryptID(token, seed string) Result {
	if err := ValidateEncryptedID(token); err != nil {
		return fail(KindValidation, err)
	}
	if err := ValidateUUID(seed); err != nil {
		return fail(KindValidation, err)
	}
	if len(token) < PrefixLen {
		return fail(KindFormat, fmt.Errorf("%w: token too short", ErrInvalidFormat))
	}

	sealed, err := DecodeBody(token[PrefixLen:])
	if err != nil {
		return fail(KindDecode, err)
	}

	key := DeriveKey(seed)
	defer memguard.WipeBytes(key[:])

	plain, err := open(sealed, key)
	if err != nil {
		return fail(KindDecryption, err)
	}
	defer memguard.WipeBytes(plain)

	if !utf8.Valid(plain) {
		return fail(KindEncoding, fmt.Errorf("%w: %d bytes", ErrInvalidEncoding, len(plain)))
	}

	return DecryptSuccess{Token: token, Original: string(plain)}
}
