package command

import (
	"lcsubmit/internal/cli/codeblock"

	"github.com/spf13/cobra"
)

func newExtractCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file> [--line N] [--codefile path]",
		Short: "copy the code block around the cursor to the code file without submitting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := openEditor(args[0], opts.line)
			if err != nil {
				return err
			}
			path, err := codeblock.Copy(ed, opts.cfg.CodeFile())
			if err != nil {
				return err
			}
			opts.notifier.Print(path)
			return nil
		},
	}
	addDocumentFlags(cmd, opts)
	return cmd
}
