// Package machine looks up the host machine identifier used as a custom ID seed.
//
// The identifier is the one RustDesk itself binds to:
//
//   - Linux: /etc/machine-id, falling back to /var/lib/dbus/machine-id (32 hex digits)
//   - macOS: IOPlatformUUID reported by ioreg (hyphenated UUID)
//   - Windows: HKLM\SOFTWARE\Microsoft\Cryptography\MachineGuid (hyphenated UUID)
//
// Usage:
//
//	provider, err := machine.NewProvider(ctx)
//	if err != nil {
//	    return err
//	}
//	c, err := customid.NewCodec(provider)
package machine

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	customid "github.com/Jxpro/custom-rustdesk"
)

var (
	// ErrNotFound is returned when no machine identifier could be read.
	ErrNotFound = errors.New("machine: machine identifier not found")

	// ErrUnsupported is returned on platforms without a known identifier source.
	ErrUnsupported = errors.New("machine: platform not supported")
)

// Lookup returns the machine identifier of the current host with surrounding
// whitespace removed. The value is not validated.
func Lookup(ctx context.Context) (string, error) {
	id, err := lookup(ctx)
	if err != nil {
		return "", err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrNotFound
	}
	return id, nil
}

// Option configures NewProvider.
type Option func(*options)

type options struct {
	lookup   func(context.Context) (string, error)
	fallback string
}

// WithLookup replaces the platform lookup, e.g. to read a seed from another source.
func WithLookup(fn func(context.Context) (string, error)) Option {
	return func(o *options) {
		o.lookup = fn
	}
}

// WithFallback sets a seed to use when the lookup fails.
func WithFallback(seed string) Option {
	return func(o *options) {
		o.fallback = seed
	}
}

// NewProvider resolves the machine seed once and returns it as a SeedProvider.
// The seed is trimmed and must pass customid.ValidateUUID.
func NewProvider(ctx context.Context, opts ...Option) (*customid.StaticSeedProvider, error) {
	o := options{lookup: Lookup}
	for _, opt := range opts {
		opt(&o)
	}

	seed, err := o.lookup(ctx)
	if err != nil {
		if o.fallback == "" {
			return nil, fmt.Errorf("machine: lookup failed: %w", err)
		}
		seed = o.fallback
	}

	provider, err := customid.NewStaticSeedProvider(seed, customid.WithTrim())
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}
	return provider, nil
}

// readIDFile returns the first non-empty file among paths.
func readIDFile(paths []string) (string, error) {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrNotFound, strings.Join(paths, ", "))
}

// parseIOReg extracts IOPlatformUUID from `ioreg -rd1 -c IOPlatformExpertDevice` output.
func parseIOReg(out []byte) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, `"IOPlatformUUID"`) {
			continue
		}
		_, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if id := strings.Trim(strings.TrimSpace(value), `"`); id != "" {
			return id, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("machine: reading ioreg output: %w", err)
	}
	return "", fmt.Errorf("%w: IOPlatformUUID missing from ioreg output", ErrNotFound)
}
