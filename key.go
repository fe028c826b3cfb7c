package customid

// KeyLen is the size in bytes of a derived key. It matches the secretbox key size.
const KeyLen = 32

// NonceLen is the size in bytes of the sealing nonce.
const NonceLen = 24

// DeriveKey turns a seed into a KeyLen-byte key.
//
// The UTF-8 bytes of seed are right-padded with zeros or truncated to KeyLen.
// This is not a key derivation function; it is kept byte-for-byte so that tokens
// issued under the "00" scheme keep opening. The seed is not trimmed.
func DeriveKey(seed string) *[KeyLen]byte {
	var key [KeyLen]byte
	copy(key[:], seed)
	return &key
}
