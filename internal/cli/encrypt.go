package cli

import (
	"fmt"

	"github.com/neucn/neupass/pkg/webvpn"
	"github.com/spf13/cobra"
)

func newEncryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <url>",
		Short: "Rewrite a service URL for access through WebVPN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), webvpn.EncryptURL(args[0]))
			return nil
		},
	}
}
