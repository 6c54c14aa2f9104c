package submitter

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	pkgerrors "lcsubmit/pkg/errors"
	"lcsubmit/pkg/utils/logger"

	"github.com/google/shlex"
	"go.uber.org/zap"
)

// FilePlaceholder is replaced by the code file path in a command template.
const FilePlaceholder = "{file}"

// waitDelay bounds how long Submit waits for output after the command is
// killed.
const waitDelay = 500 * time.Millisecond

// Command runs an external judge client and returns its stdout.
type Command struct {
	argv []string
}

// NewCommand splits template with shell quoting rules.
func NewCommand(template string) (*Command, error) {
	argv, err := shlex.Split(template)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, pkgerrors.SubmitCommandInvalid, "parse submit command failed: %v", err)
	}
	if len(argv) == 0 {
		return nil, pkgerrors.Newf(pkgerrors.SubmitCommandInvalid, "submit command is empty")
	}
	return &Command{argv: argv}, nil
}

// Args returns the argument vector for filePath. Every occurrence of
// FilePlaceholder is substituted; without one, filePath is appended.
func (c *Command) Args(filePath string) []string {
	args := make([]string, len(c.argv))
	replaced := false
	for i, arg := range c.argv {
		if strings.Contains(arg, FilePlaceholder) {
			arg = strings.ReplaceAll(arg, FilePlaceholder, filePath)
			replaced = true
		}
		args[i] = arg
	}
	if !replaced {
		args = append(args, filePath)
	}
	return args
}

func (c *Command) Submit(ctx context.Context, filePath string) (string, error) {
	args := c.Args(filePath)
	logger.Debug(ctx, "running submit command", zap.Strings("argv", args))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	isolate(cmd)
	if err := cmd.Run(); err != nil {
		return stdout.String(), pkgerrors.Wrap(err, pkgerrors.SubmitFailed).
			WithDetail("command", strings.Join(args, " ")).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}
	if stderr.Len() > 0 {
		logger.Debug(ctx, "submit command wrote to stderr", zap.String("stderr", stderr.String()))
	}
	return stdout.String(), nil
}
