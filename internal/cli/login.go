package cli

import (
	"fmt"

	"github.com/neucn/neupass/pkg/cas"
	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var (
		username  string
		password  string
		viaWebVPN bool
		guard     bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with username and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				username = a.cfg.Username
			}
			if password == "" {
				password = a.cfg.Password
			}
			if username == "" || password == "" {
				return fmt.Errorf("username and password are required (flags or NEU_USERNAME/NEU_PASSWORD)")
			}

			session, err := a.newSession()
			if err != nil {
				return err
			}

			credential := cas.NewCredential(username, password)
			if guard {
				credential = credential.WithRedirectGuard()
			}

			ctx := cmd.Context()
			status, err := session.Login(ctx, credential)
			if err != nil {
				return err
			}

			if viaWebVPN {
				// The proxy keeps its own session cookie; establish it
				// after the direct login the same way the portal expects.
				status, err = session.LoginWebVPN(ctx, credential)
				if err != nil {
					return err
				}
			}

			return printStatus(cmd, status)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "student number (defaults to NEU_USERNAME)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "portal password (defaults to NEU_PASSWORD)")
	cmd.Flags().BoolVar(&viaWebVPN, "webvpn", false, "also establish the WebVPN session")
	cmd.Flags().BoolVar(&guard, "guard", false, "fail instead of logging in over an existing session")
	return cmd
}
