package submitter

import (
	"context"
	"time"

	"lcsubmit/internal/cli/config"
	httpclient "lcsubmit/internal/cli/http"
	"lcsubmit/internal/cli/state"
	pkgerrors "lcsubmit/pkg/errors"
)

// Submitter sends the code file at filePath to the judge and returns the
// judge's human-readable result.
type Submitter interface {
	Submit(ctx context.Context, filePath string) (string, error)
}

// SessionChecker is implemented by submitters that need a signed-in user.
type SessionChecker interface {
	SignedIn() bool
}

// New builds the submitter selected by cfg.Submit.Backend.
func New(cfg config.Config) (Submitter, error) {
	switch cfg.Submit.Backend {
	case config.BackendCommand:
		return NewCommand(cfg.Submit.Command)
	case config.BackendHTTP:
		session, err := state.Load(cfg.Submit.StatePath)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, pkgerrors.SessionLoadFailed, "%v", err)
		}
		client := httpclient.New(cfg.Submit.BaseURL, cfg.Submit.Timeout, func() string {
			return session.AccessToken
		})
		return NewHTTP(client, session, time.Now), nil
	default:
		return nil, pkgerrors.Newf(pkgerrors.ConfigInvalid, "unknown submit backend: %s", cfg.Submit.Backend)
	}
}
