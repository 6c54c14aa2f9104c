package command

import (
	"time"

	"lcsubmit/internal/cli/state"
	pkgerrors "lcsubmit/pkg/errors"

	"github.com/spf13/cobra"
)

func newLoginCommand(opts *options) *cobra.Command {
	var token, username string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:     "login --token TOKEN [--user NAME] [--ttl 24h]",
		Short:   "store the judge access token used by the http backend",
		Example: "  lcsubmit login --token eyJhbGciOi...",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return pkgerrors.BadRequest("no --token given: not doing anything")
			}
			session := state.Session{AccessToken: token, Username: username}
			if ttl > 0 {
				expiresAt := time.Now().Add(ttl)
				session.ExpiresAt = &expiresAt
			}
			if err := state.Save(opts.cfg.Submit.StatePath, session); err != nil {
				return pkgerrors.Wrapf(err, pkgerrors.SessionSaveFailed, "%v", err)
			}
			opts.notifier.Info("session saved to %s", opts.cfg.Submit.StatePath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&token, "token", "t", "", "access token")
	cmd.Flags().StringVarP(&username, "user", "u", "", "user name, informational")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime; 0 means no expiry")
	return cmd
}

func newLogoutCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "remove the stored judge session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := state.Clear(opts.cfg.Submit.StatePath); err != nil {
				return pkgerrors.Wrapf(err, pkgerrors.SessionSaveFailed, "%v", err)
			}
			opts.notifier.Info("signed out")
			return nil
		},
	}
}
