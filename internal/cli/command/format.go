package command

import (
	"io"
	"os"
	"time"

	"lcsubmit/internal/cli/result"
	pkgerrors "lcsubmit/pkg/errors"

	"github.com/spf13/cobra"
)

func newFormatCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "format [result-file]",
		Short: "print the summary comment for a judge result read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 0 || args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return pkgerrors.Wrapf(err, pkgerrors.FileReadFailed, "read result failed: %v", err)
			}
			opts.notifier.Print(result.Summarize(string(data), time.Now(), opts.cfg.Result.Language))
			return nil
		},
	}
}
