package customid

import (
	"context"
	"fmt"

	"github.com/rbaliyan/config/codec"
)

// CodecName is the name under which Codec registers with the config codec registry.
const CodecName = "customid:" + SchemeV0

// Codec stores custom IDs as tokens in a config store.
// Encode turns a custom ID into a full token (prefix included) and Decode reverses it,
// both using the seed from the provider.
//
// Codec is safe for concurrent use if the SeedProvider is. StaticSeedProvider satisfies
// this requirement.
type Codec struct {
	provider SeedProvider
}

// Compile-time interface check.
var _ codec.Codec = (*Codec)(nil)

// NewCodec creates a token codec bound to the seed from provider.
// Returns ErrNilProvider if provider is nil.
func NewCodec(provider SeedProvider) (*Codec, error) {
	if provider == nil {
		return nil, fmt.Errorf("customid: NewCodec: %w", ErrNilProvider)
	}
	return &Codec{provider: provider}, nil
}

// Name returns CodecName.
func (c *Codec) Name() string {
	return CodecName
}

// Encode seals a custom ID. v must be a string, *string or []byte.
func (c *Codec) Encode(_ context.Context, v any) ([]byte, error) {
	var id string
	switch t := v.(type) {
	case string:
		id = t
	case *string:
		if t == nil {
			return nil, fmt.Errorf("customid: cannot encode nil *string")
		}
		id = *t
	case []byte:
		id = string(t)
	default:
		return nil, fmt.Errorf("customid: cannot encode %T, want string or []byte", v)
	}

	seed, err := c.provider.Seed()
	if err != nil {
		return nil, fmt.Errorf("customid: failed to get seed: %w", err)
	}

	switch r := EncryptID(id, seed).(type) {
	case EncryptSuccess:
		return []byte(r.Token()), nil
	case *Failure:
		return nil, fmt.Errorf("customid: encode failed: %w", r)
	default:
		return nil, fmt.Errorf("customid: unexpected result %T", r)
	}
}

// Decode opens a token and stores the custom ID in v, which must be a *string, *[]byte
// or *any. A *any target receives a string.
func (c *Codec) Decode(_ context.Context, data []byte, v any) error {
	seed, err := c.provider.Seed()
	if err != nil {
		return fmt.Errorf("customid: failed to get seed: %w", err)
	}

	var id string
	switch r := DecryptID(string(data), seed).(type) {
	case DecryptSuccess:
		id = r.Original
	case *Failure:
		return fmt.Errorf("customid: decode failed: %w", r)
	default:
		return fmt.Errorf("customid: unexpected result %T", r)
	}

	switch t := v.(type) {
	case *string:
		if t == nil {
			return fmt.Errorf("customid: cannot decode into nil *string")
		}
		*t = id
	case *[]byte:
		if t == nil {
			return fmt.Errorf("customid: cannot decode into nil *[]byte")
		}
		*t = []byte(id)
	case *any:
		if t == nil {
			return fmt.Errorf("customid: cannot decode into nil *any")
		}
		*t = id
	default:
		return fmt.Errorf("customid: cannot decode into %T, want *string, *[]byte or *any", v)
	}
	return nil
}
