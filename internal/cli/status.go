package cli

import (
	"fmt"

	"github.com/neucn/neupass/pkg/cas"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	var (
		token     string
		viaWebVPN bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check session state, optionally resuming from a token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = a.cfg.Token
			}

			session, err := a.newSession()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var status cas.UserStatus
			switch {
			case token != "" && viaWebVPN:
				status, err = session.LoginWebVPN(ctx, cas.NewToken(token))
			case token != "":
				status, err = session.Login(ctx, cas.NewToken(token))
			case viaWebVPN:
				status, err = session.CheckStatusWebVPN(ctx)
			default:
				status, err = session.CheckStatus(ctx)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "", "session token to resume (defaults to NEU_TOKEN)")
	cmd.Flags().BoolVar(&viaWebVPN, "webvpn", false, "probe the WebVPN route instead of the direct one")
	return cmd
}
