package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	customid "github.com/Jxpro/custom-rustdesk"
	"github.com/Jxpro/custom-rustdesk/machine"
)

func newUUIDCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uuid",
		Short: "Print this machine's identifier used as the default seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := a.lookup(ctx)
			id = strings.TrimSpace(id)
			if err == nil && id == "" {
				err = machine.ErrNotFound
			}
			if err != nil {
				return fmt.Errorf("%w (%v)", errNoSeed, err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, id)
			if err := customid.ValidateUUID(id); err != nil {
				printSeedWarning(cmd.ErrOrStderr(), err)
			}
			return nil
		},
	}
}
