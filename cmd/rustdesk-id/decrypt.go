package main

import (
	"github.com/spf13/cobra"

	customid "github.com/Jxpro/custom-rustdesk"
)

func newDecryptCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <token>",
		Short: "Decrypt a RustDesk token back into the custom ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDecrypt(cmd, args[0])
		},
	}
}

func (a *app) runDecrypt(cmd *cobra.Command, token string) error {
	ctx := cmd.Context()
	seed, err := a.resolveSeed(ctx)
	if err != nil {
		return err
	}

	res := a.svc.Decrypt(ctx, token, seed)
	dec, ok := res.(customid.DecryptSuccess)
	if !ok {
		return customid.Err(res)
	}

	w := cmd.OutOrStdout()
	printDecrypted(w, dec.Token, dec.Original)
	a.copyResult(ctx, w, dec.Original)
	printCompareHint(w)
	return nil
}
