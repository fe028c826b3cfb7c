//go:build !linux && !darwin && !windows

package machine

import "context"

func lookup(_ context.Context) (string, error) {
	return "", ErrUnsupported
}
