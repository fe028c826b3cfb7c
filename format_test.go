package customid

import (
	"bytes"
	"testing"
)

func TestDeriveKeyPads(t *testing.T) {
	key := DeriveKey("abc")
	want := [KeyLen]byte{'a', 'b', 'c'}
	if *key != want {
		t.Errorf("DeriveKey(abc): got %x, want %x", key[:], want[:])
	}
}

func TestDeriveKeyTruncates(t *testing.T) {
	key := DeriveKey(testSeed)
	if string(key[:]) != testSeed[:KeyLen] {
		t.Errorf("DeriveKey: got %q, want %q", key[:], testSeed[:KeyLen])
	}
}

func TestDeriveKeyExactLength(t *testing.T) {
	key := DeriveKey(testSeedHex)
	if string(key[:]) != testSeedHex {
		t.Errorf("DeriveKey: got %q, want %q", key[:], testSeedHex)
	}
}

func TestDeriveKeyDoesNotTrim(t *testing.T) {
	if *DeriveKey(" " + testSeedHex) == *DeriveKey(testSeedHex) {
		t.Error("leading whitespace should change the derived key")
	}
}

func TestDeriveKeyFreshBuffer(t *testing.T) {
	a := DeriveKey(testSeed)
	b := DeriveKey(testSeed)
	if a == b {
		t.Fatal("DeriveKey returned a shared buffer")
	}
	a[0] ^= 0xff
	if *a == *b {
		t.Error("mutating one key changed the other")
	}
}

func TestSealOpen(t *testing.T) {
	key := DeriveKey(testSeed)
	for _, plaintext := range [][]byte{nil, {}, []byte("alice"), bytes.Repeat([]byte{0x42}, 4096)} {
		sealed := seal(plaintext, key)
		if len(sealed) != len(plaintext)+16 {
			t.Errorf("sealed length: got %d, want %d", len(sealed), len(plaintext)+16)
		}
		got, err := open(sealed, key)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Errorf("open: got %q, want %q", got, plaintext)
		}
	}
}

func TestOpenWrongKey(t *testing.T) {
	sealed := seal([]byte("alice"), DeriveKey(testSeed))
	got, err := open(sealed, DeriveKey(testSeedZero))
	if !IsDecryptionFailed(err) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
	if got != nil {
		t.Errorf("open returned output on failure: %q", got)
	}
}

func TestOpenShortInput(t *testing.T) {
	key := DeriveKey(testSeed)
	for n := range 16 {
		if _, err := open(make([]byte, n), key); !IsDecryptionFailed(err) {
			t.Errorf("%d bytes: expected ErrDecryptionFailed, got %v", n, err)
		}
	}
}

func TestEncodeBodyStandardAlphabet(t *testing.T) {
	got := EncodeBody([]byte{0xfb, 0xff, 0xfe})
	if got != "+//+" {
		t.Errorf("EncodeBody: got %q, want %q", got, "+//+")
	}
	if got := EncodeBody([]byte("Hello")); got != "SGVsbG8=" {
		t.Errorf("EncodeBody: got %q, want %q", got, "SGVsbG8=")
	}
}

func TestDecodeBody(t *testing.T) {
	got, err := DecodeBody("SGVsbG8=")
	if err != nil {
		t.Fatalf("DecodeBody: %v", err)
	}
	if string(got) != "Hello" {
		t.Errorf("DecodeBody: got %q, want %q", got, "Hello")
	}

	empty, err := DecodeBody("")
	if err != nil {
		t.Fatalf("DecodeBody(empty): %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("DecodeBody(empty): got %q", empty)
	}
}

func TestDecodeBodyRejects(t *testing.T) {
	bad := []string{
		"SGVsbG8",
		"SGVsbG8==",
		"SGVsbG9=",
		"SGVs\nbG8=",
		"SGVs\rbG8=",
		"SGVs bG8=",
		"SGVs-bG8_",
		"SGVsbG8=é",
		"=SGVsbG8",
		"S",
	}
	for _, s := range bad {
		if _, err := DecodeBody(s); !IsDecode(err) {
			t.Errorf("DecodeBody(%q): expected ErrDecode, got %v", s, err)
		}
	}
}

func TestFormatToken(t *testing.T) {
	if got := FormatToken("SGVsbG8="); got != "00SGVsbG8=" {
		t.Errorf("FormatToken: got %q, want %q", got, "00SGVsbG8=")
	}
	if len(SchemeV0) != PrefixLen {
		t.Errorf("len(SchemeV0) = %d, want PrefixLen %d", len(SchemeV0), PrefixLen)
	}
}
