package customid

import "strings"

// SeedProvider supplies the machine seed used to derive keys.
// Implementations must be safe for concurrent use.
type SeedProvider interface {
	// Seed returns the seed for the next operation.
	Seed() (string, error)
}

// StaticSeedProvider is a SeedProvider backed by a seed fixed at construction.
// The seed never changes after construction, so it is safe for concurrent use.
type StaticSeedProvider struct {
	seed string
}

// StaticOption configures a StaticSeedProvider.
type StaticOption func(*staticOptions)

type staticOptions struct {
	trim bool
}

// WithTrim strips surrounding whitespace from the seed before it is stored.
//
// DeriveKey uses the seed bytes as given, so a seed with a trailing newline derives a
// different key than the trimmed one. Use WithTrim for seeds read from files or stdin.
func WithTrim() StaticOption {
	return func(o *staticOptions) {
		o.trim = true
	}
}

// NewStaticSeedProvider creates a SeedProvider that always returns seed.
// The seed must pass ValidateUUID.
func NewStaticSeedProvider(seed string, opts ...StaticOption) (*StaticSeedProvider, error) {
	var o staticOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.trim {
		seed = strings.TrimSpace(seed)
	}
	if err := ValidateUUID(seed); err != nil {
		return nil, err
	}
	return &StaticSeedProvider{seed: seed}, nil
}

// Seed returns the stored seed.
func (p *StaticSeedProvider) Seed() (string, error) {
	return p.seed, nil
}

// Compile-time interface check.
var _ SeedProvider = (*StaticSeedProvider)(nil)
