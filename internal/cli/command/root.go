package command

import (
	"context"
	stderrors "errors"
	"io"

	"lcsubmit/internal/cli/codeblock"
	"lcsubmit/internal/cli/config"
	"lcsubmit/internal/cli/editor"
	"lcsubmit/internal/cli/notify"
	pkgerrors "lcsubmit/pkg/errors"
	"lcsubmit/pkg/utils/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds flag values and state shared by the subcommands.
type options struct {
	configPath string
	debug      bool
	line       int
	codeFile   string
	backend    string

	cfg      config.Config
	notifier *notify.Notifier
}

// reportedError marks an error the notifier has already shown.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// NewRootCommand builds the lcsubmit command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &options{notifier: notify.New(out, errOut)}

	root := &cobra.Command{
		Use:           "lcsubmit",
		Short:         "submit the code block of a solution file and annotate it with the judge's verdict",
		Example:       "  lcsubmit submit two-sum.cpp --line 12",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return pkgerrors.Wrapf(err, pkgerrors.ConfigLoadFailed, "%v", err)
			}
			if opts.codeFile != "" {
				cfg.FilePath.Default.CodeFile = opts.codeFile
			}
			if opts.backend != "" {
				cfg.Submit.Backend = opts.backend
				if err := cfg.Validate(); err != nil {
					return pkgerrors.Wrapf(err, pkgerrors.ConfigInvalid, "%v", err)
				}
			}
			if opts.debug {
				cfg.Log.Level = "debug"
			}
			if err := logger.Init(cfg.Log); err != nil {
				return pkgerrors.Wrapf(err, pkgerrors.ConfigInvalid, "%v", err)
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath(), "path to the YAML configuration file")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newSubmitCommand(opts),
		newExtractCommand(opts),
		newFormatCommand(opts),
		newLoginCommand(opts),
		newLogoutCommand(opts),
		newInitCommand(opts),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	_ = logger.Sync()
	if err == nil {
		return 0
	}

	var reported *reportedError
	if !stderrors.As(err, &reported) {
		notify.New(out, errOut).Report(err)
	}
	if code := pkgerrors.GetCode(err); code != pkgerrors.InternalServerError {
		return code.ExitCode()
	}
	return 1
}

func addDocumentFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().IntVarP(&opts.line, "line", "l", 0, "1-based cursor line (default: the line of the first code start marker)")
	cmd.Flags().StringVar(&opts.codeFile, "codefile", "", "override filePath.default.codefile")
}

// openEditor opens the solution file with the cursor taken from --line.
func openEditor(path string, line int) (*editor.Editor, error) {
	ed, err := editor.Open(path, line-1)
	if err != nil {
		logger.Debug(context.Background(), "open solution failed", zap.String("path", path), zap.Error(err))
		return nil, pkgerrors.Wrap(err, pkgerrors.NoActiveDocument).WithDetail("path", path)
	}
	if line <= 0 {
		ed.SetCursor(codeblock.DefaultCursor(ed.Document()))
	}
	return ed, nil
}
