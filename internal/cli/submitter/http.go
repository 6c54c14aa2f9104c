package submitter

import (
	"context"
	"os"
	"strconv"
	"time"

	"lcsubmit/internal/cli/codeblock"
	httpclient "lcsubmit/internal/cli/http"
	"lcsubmit/internal/cli/state"
	pkgerrors "lcsubmit/pkg/errors"
	"lcsubmit/pkg/utils/logger"

	"go.uber.org/zap"
)

const submissionsPath = "/api/v1/submissions"

// HTTP posts the code file to a judge's submissions endpoint. The response
// body is the judge's result text.
type HTTP struct {
	client  *httpclient.Client
	session state.Session
	now     func() time.Time
}

func NewHTTP(client *httpclient.Client, session state.Session, now func() time.Time) *HTTP {
	if now == nil {
		now = time.Now
	}
	return &HTTP{client: client, session: session, now: now}
}

func (h *HTTP) SignedIn() bool {
	return h.session.SignedIn(h.now())
}

type submitRequest struct {
	ProblemID  int64  `json:"problem_id"`
	LanguageID string `json:"language_id"`
	SourceCode string `json:"source_code"`
}

func (h *HTTP) Submit(ctx context.Context, filePath string) (string, error) {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return "", pkgerrors.Wrapf(err, pkgerrors.FileReadFailed, "read code file failed: %v", err)
	}
	header, ok, err := codeblock.ReadHeader(filePath)
	if err != nil {
		return "", pkgerrors.Wrapf(err, pkgerrors.FileReadFailed, "%v", err)
	}
	if !ok {
		return "", pkgerrors.New(pkgerrors.ProblemHeaderMissing).WithDetail("path", filePath)
	}
	problemID, err := strconv.ParseInt(header.ProblemID, 10, 64)
	if err != nil {
		return "", pkgerrors.Wrapf(err, pkgerrors.ProblemHeaderMissing, "invalid problem id: %s", header.ProblemID)
	}

	resp, err := h.client.PostJSON(ctx, submissionsPath, submitRequest{
		ProblemID:  problemID,
		LanguageID: header.Lang,
		SourceCode: string(source),
	})
	if err != nil {
		return "", pkgerrors.Wrap(err, pkgerrors.SubmitFailed)
	}
	logger.Debug(ctx, "judge responded",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", resp.Duration),
		zap.String("idempotency_key", resp.IdempotencyKey),
	)
	if err := httpclient.CheckStatus(resp, "problem "+header.ProblemID); err != nil {
		return "", err
	}
	return string(resp.Body), nil
}
