package customid

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Token format constants.
const (
	// SchemeV0 is the scheme-version prefix of tokens produced by this package.
	SchemeV0 = "00"

	// PrefixLen is the length of the scheme-version prefix. DecryptID strips exactly
	// this many characters before decoding the body.
	PrefixLen = 2

	// base64Alphabet is the set of characters allowed in a token, padding included.
	base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="
)

// bodyEncoding is padded standard base64 with the "+/" alphabet.
// Strict mode rejects non-zero trailing padding bits.
var bodyEncoding = base64.StdEncoding.Strict()

// EncodeBody returns the base64 text of a sealed blob, without the scheme prefix.
func EncodeBody(sealed []byte) string {
	return bodyEncoding.EncodeToString(sealed)
}

// DecodeBody parses the base64 body of a token (the part after the scheme prefix).
//
// Characters outside the base64 alphabet are rejected up front, including the CR and LF
// that encoding/base64 would otherwise skip. Bad padding or length is reported as ErrDecode.
func DecodeBody(text string) ([]byte, error) {
	if i := strings.IndexFunc(text, notBase64); i >= 0 {
		r, _ := utf8.DecodeRuneInString(text[i:])
		return nil, fmt.Errorf("%w: invalid character %q at offset %d", ErrDecode, r, i)
	}
	sealed, err := bodyEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return sealed, nil
}

// FormatToken prepends the current scheme prefix to a token body returned in EncryptSuccess.
func FormatToken(body string) string {
	return SchemeV0 + body
}

// notBase64 reports whether r falls outside base64Alphabet.
func notBase64(r rune) bool {
	return !strings.ContainsRune(base64Alphabet, r)
}
