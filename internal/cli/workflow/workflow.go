package workflow

import (
	"context"
	stderrors "errors"
	"time"

	"lcsubmit/internal/cli/codeblock"
	"lcsubmit/internal/cli/editor"
	"lcsubmit/internal/cli/notify"
	"lcsubmit/internal/cli/result"
	"lcsubmit/internal/cli/submitter"
	pkgerrors "lcsubmit/pkg/errors"
	"lcsubmit/pkg/utils/contextkey"
	"lcsubmit/pkg/utils/logger"

	"go.uber.org/zap"
)

// Outcome tells how far a submission went.
type Outcome int

const (
	Aborted Outcome = iota
	Rejected
	Annotated
)

// Runner drives a submission from the open editor to the annotated file.
type Runner struct {
	CodeFile  string
	Language  string
	Submitter submitter.Submitter
	Notifier  *notify.Notifier
	Now       func() time.Time
}

// SubmitSolution copies the code block around the cursor to the code file,
// submits it and, when accepted, writes a summary comment under the start
// marker and saves the document. Failures are reported through the notifier
// and returned.
func (r *Runner) SubmitSolution(ctx context.Context, ed *editor.Editor) (Outcome, error) {
	if ed != nil {
		ctx = context.WithValue(ctx, contextkey.Document, ed.Path())
	}
	ctx = context.WithValue(ctx, contextkey.CodeFile, r.CodeFile)

	if checker, ok := r.Submitter.(submitter.SessionChecker); ok && !checker.SignedIn() {
		return r.abort(ctx, pkgerrors.New(pkgerrors.NotSignedIn))
	}

	filePath, err := codeblock.Copy(ed, r.CodeFile)
	if err != nil {
		return r.abort(ctx, err)
	}
	logger.Info(ctx, "code block copied", zap.Int("cursor", ed.Cursor()))

	message, err := r.Submitter.Submit(ctx, filePath)
	if err != nil {
		e := pkgerrors.GetError(err)
		logger.Error(ctx, "submit failed",
			zap.String("cause", e.Cause()),
			zap.Any("details", e.Details),
		)
		failed := pkgerrors.Wrap(err, pkgerrors.SubmitFailed)
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			failed = pkgerrors.Wrap(err, pkgerrors.Timeout).WithMessage("Submission timed out.")
		}
		r.Notifier.Report(failed)
		return Aborted, failed
	}

	logger.Debugf(ctx, "judge returned %d bytes", len(message))

	if !result.Accepted(message) {
		logger.Info(ctx, "submission not accepted")
		r.Notifier.ShowSubmission(message)
		return Rejected, nil
	}

	summary := result.Summarize(message, r.now(), r.language(filePath))
	if err := codeblock.InsertResult(ed, summary); err != nil {
		return r.abort(ctx, err)
	}
	if err := ed.Save(); err != nil {
		return r.abort(ctx, pkgerrors.Wrap(err, pkgerrors.FileWriteFailed))
	}
	logger.Info(ctx, "submission result inserted")
	r.Notifier.Info("Accepted. Result written to %s", ed.Path())
	return Annotated, nil
}

func (r *Runner) abort(ctx context.Context, err error) (Outcome, error) {
	logger.Warn(ctx, "submission aborted", zap.Error(err))
	r.Notifier.Report(err)
	return Aborted, err
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// language picks the name printed in the summary: the configured one, else
// the code file header's lang, else the result package default.
func (r *Runner) language(filePath string) string {
	if r.Language != "" {
		return r.Language
	}
	if h, ok, err := codeblock.ReadHeader(filePath); err == nil && ok {
		return h.Lang
	}
	return ""
}
