package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neucn/neupass/pkg/cas"
	"github.com/spf13/cobra"
)

func newWechatCmd(a *app) *cobra.Command {
	var (
		interval  time.Duration
		timeout   time.Duration
		viaWebVPN bool
	)

	cmd := &cobra.Command{
		Use:   "wechat",
		Short: "Log in by approving the request in Wechat",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.newSession()
			if err != nil {
				return err
			}

			w := cas.NewWechat()
			fmt.Fprintf(cmd.OutOrStdout(), "Open this URL in Wechat and approve the login:\n%s\n", w.AuthURL())

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			var status cas.UserStatus
			if viaWebVPN {
				status, err = session.AwaitWechatWebVPN(ctx, w, interval)
			} else {
				status, err = session.AwaitWechat(ctx, w, interval)
			}
			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					return fmt.Errorf("authorization was not approved within %s", timeout)
				}
				return err
			}

			return printStatus(cmd, status)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "poll interval")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall time to wait for approval")
	cmd.Flags().BoolVar(&viaWebVPN, "webvpn", false, "authorize the WebVPN route instead of the direct one")
	return cmd
}
