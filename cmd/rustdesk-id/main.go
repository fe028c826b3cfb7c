// Command rustdesk-id encrypts RustDesk custom IDs into "00" tokens and back.
//
//	rustdesk-id --id alice
//	rustdesk-id --eid 00... --uuid 550e8400-e29b-41d4-a716-446655440000
//	rustdesk-id uuid
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Jxpro/custom-rustdesk/internal/config"
	"github.com/Jxpro/custom-rustdesk/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCommand(newApp(config.Load()))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" "+err.Error())
		stop()
		os.Exit(1)
	}
}
