package machine

import (
	"context"
	"fmt"
	"os/exec"
)

func lookup(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "ioreg", "-rd1", "-c", "IOPlatformExpertDevice").Output()
	if err != nil {
		return "", fmt.Errorf("machine: ioreg: %w", err)
	}
	return parseIOReg(out)
}
