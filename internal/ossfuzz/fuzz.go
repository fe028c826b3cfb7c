//go:build gofuzz

// Package ossfuzz holds the OSS-Fuzz entry points. They mirror the native fuzz tests in
// the root package and are built with go-118-fuzz-build, which supplies the F and T shims.
package ossfuzz

import (
	"unicode/utf8"

	fuzz "github.com/AdamKorcz/go-118-fuzz-build/testing"

	customid "github.com/Jxpro/custom-rustdesk"
)

// FuzzDecryptID feeds arbitrary tokens and seeds to DecryptID.
func FuzzDecryptID(f *fuzz.F) {
	f.Fuzz(func(t *fuzz.T, token, seed string) {
		switch r := customid.DecryptID(token, seed).(type) {
		case customid.DecryptSuccess:
			if !utf8.ValidString(r.Original) {
				t.Fatalf("Original is not UTF-8: %q", r.Original)
			}
		case *customid.Failure:
			if r.Err == nil {
				t.Fatalf("failure without cause: %#v", r)
			}
		}
	})
}

// FuzzRoundTrip checks that every accepted custom ID survives EncryptID then DecryptID.
func FuzzRoundTrip(f *fuzz.F) {
	f.Fuzz(func(t *fuzz.T, id, seed string) {
		enc, ok := customid.EncryptID(id, seed).(customid.EncryptSuccess)
		if !ok || !utf8.ValidString(id) {
			return
		}
		dec, ok := customid.DecryptID(enc.Token(), seed).(customid.DecryptSuccess)
		if !ok || dec.Original != id {
			t.Fatalf("round trip failed for %q", id)
		}
	})
}
