// Package cli wires the neupass command tree: credential login, token
// resumption, the Wechat approval flow and the WebVPN URL transform.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/neucn/neupass/pkg/cas"
	"github.com/neucn/neupass/pkg/slogx"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

// app holds state shared by every subcommand after the root pre-run.
type app struct {
	cfg    Config
	logger *slog.Logger
}

// Execute runs the neupass command tree.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "neupass",
		Short: "Authenticate against the NEU unified identity portal",
		Long: `neupass obtains an authenticated session from the NEU unified identity
portal (CAS), directly or through the campus WebVPN proxy, and prints the
resulting session token for downstream tools.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg

			// One run id per invocation so log lines from a single
			// attempt can be grouped.
			a.logger = slogx.New(slogx.Config{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
			}).With(slog.String("run_id", ulid.Make().String()))
			return nil
		},
	}

	root.AddCommand(
		newLoginCmd(a),
		newStatusCmd(a),
		newWechatCmd(a),
		newEncryptCmd(),
	)
	return root
}

// newSession builds a cas.Session from the app configuration.
func (a *app) newSession() (*cas.Session, error) {
	return cas.New(
		cas.WithTimeout(a.cfg.Timeout),
		cas.WithLogger(a.logger),
	)
}

// printStatus reports the outcome of a login, failing the command when
// the session did not become active.
func printStatus(cmd *cobra.Command, status cas.UserStatus) error {
	if !status.IsActive() {
		return fmt.Errorf("login did not produce an active session: %s", status)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "status: %s\ntoken: %s\n", status, status.Token())
	return nil
}
