package main

import (
	"github.com/spf13/cobra"

	customid "github.com/Jxpro/custom-rustdesk"
)

func newEncryptCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <custom-id>",
		Short: "Encrypt a custom ID into a RustDesk token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEncrypt(cmd, args[0])
		},
	}
}

func (a *app) runEncrypt(cmd *cobra.Command, id string) error {
	ctx := cmd.Context()
	seed, err := a.resolveSeed(ctx)
	if err != nil {
		return err
	}

	res := a.svc.Encrypt(ctx, id, seed)
	enc, ok := res.(customid.EncryptSuccess)
	if !ok {
		return customid.Err(res)
	}

	w := cmd.OutOrStdout()
	token := enc.Token()
	printEncrypted(w, enc.Original, token)
	a.copyResult(ctx, w, token)
	printUsage(w, token)
	return nil
}
