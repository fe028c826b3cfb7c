package machine

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const (
	cryptographyKey = `SOFTWARE\Microsoft\Cryptography`
	machineGUID     = "MachineGuid"
)

func lookup(_ context.Context) (string, error) {
	// WOW64_64KEY so 32-bit builds read the same value as the 64-bit RustDesk service.
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, cryptographyKey, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrNotFound, cryptographyKey, err)
	}
	defer k.Close()

	id, _, err := k.GetStringValue(machineGUID)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ErrNotFound, machineGUID, err)
	}
	return id, nil
}
