package command

import (
	"context"

	"lcsubmit/internal/cli/submitter"
	"lcsubmit/internal/cli/workflow"
	"lcsubmit/pkg/utils/contextkey"

	"github.com/spf13/cobra"
)

func newSubmitCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "submit <file> [--line N] [--codefile path] [--backend command|http]",
		Short:   "submit the code block around the cursor and annotate the file when accepted",
		Example: "  lcsubmit submit 1.two-sum.cpp --line 20",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := openEditor(args[0], opts.line)
			if err != nil {
				return err
			}
			sub, err := submitter.New(opts.cfg)
			if err != nil {
				return err
			}
			runner := &workflow.Runner{
				CodeFile:  opts.cfg.CodeFile(),
				Language:  opts.cfg.Result.Language,
				Submitter: sub,
				Notifier:  opts.notifier,
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.cfg.Submit.Timeout)
			defer cancel()
			ctx = context.WithValue(ctx, contextkey.Backend, opts.cfg.Submit.Backend)
			if _, err := runner.SubmitSolution(ctx, ed); err != nil {
				return &reportedError{err: err}
			}
			return nil
		},
	}
	addDocumentFlags(cmd, opts)
	cmd.Flags().StringVar(&opts.backend, "backend", "", "submitter backend: command or http")
	return cmd
}
