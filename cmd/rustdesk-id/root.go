package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(a *app) *cobra.Command {
	var id, eid string

	root := &cobra.Command{
		Use:   "rustdesk-id",
		Short: "Encrypt and decrypt RustDesk custom IDs",
		Long: `rustdesk-id turns a custom ID into the "00" token RustDesk stores in its
config file, and turns such a token back into the custom ID.

The token is bound to a seed: the --uuid flag, the RUSTDESK_ID_UUID variable,
or this machine's identifier, in that order.`,
		Example: `  rustdesk-id --id alice
  rustdesk-id --eid 00... --uuid 550e8400-e29b-41d4-a716-446655440000
  rustdesk-id encrypt alice
  rustdesk-id uuid`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case id != "":
				return a.runEncrypt(cmd, id)
			case eid != "":
				return a.runDecrypt(cmd, eid)
			default:
				return cmd.Help()
			}
		},
	}

	root.Flags().StringVarP(&id, "id", "i", "", "custom ID to encrypt")
	root.Flags().StringVarP(&eid, "eid", "e", "", "encrypted ID to decrypt")
	root.MarkFlagsMutuallyExclusive("id", "eid")

	root.PersistentFlags().StringVarP(&a.seed, "uuid", "u", "", "seed UUID or machine ID (default: RUSTDESK_ID_UUID, then this machine)")
	root.PersistentFlags().BoolVar(&a.noClipboard, "no-clipboard", false, "do not copy the result to the clipboard")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "enable debug output")

	root.AddCommand(newEncryptCommand(a), newDecryptCommand(a), newUUIDCommand(a))
	return root
}
