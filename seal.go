package customid

import (
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// zeroNonce is the nonce used for every seal and open.
//
// The "00" token scheme never varies it: the key changes per seed and only one
// custom ID is expected per machine. Sealing two different IDs under the same seed
// reveals their XOR, which the format accepts.
var zeroNonce [NonceLen]byte

// seal encrypts and authenticates plaintext under key. It cannot fail.
// The output is the Poly1305 tag followed by the XSalsa20 ciphertext.
func seal(plaintext []byte, key *[KeyLen]byte) []byte {
	return secretbox.Seal(nil, plaintext, &zeroNonce, key)
}

// open verifies and decrypts a blob produced by seal.
// Truncated, corrupted or wrong-key input returns ErrDecryptionFailed and no plaintext.
func open(sealed []byte, key *[KeyLen]byte) ([]byte, error) {
	if len(sealed) < secretbox.Overhead {
		return nil, fmt.Errorf("%w: sealed data too short (%d bytes)", ErrDecryptionFailed, len(sealed))
	}
	plaintext, ok := secretbox.Open(nil, sealed, &zeroNonce, key)
	if !ok {
		return nil, fmt.Errorf("%w: authentication failed", ErrDecryptionFailed)
	}
	return plaintext, nil
}
