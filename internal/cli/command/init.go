package command

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"lcsubmit/internal/cli/config"
	pkgerrors "lcsubmit/pkg/errors"

	"github.com/spf13/cobra"
)

func newInitCommand(opts *options) *cobra.Command {
	var codeFile string
	var force bool
	cmd := &cobra.Command{
		Use:     "init [--codefile path] [--force]",
		Short:   "write a configuration file with the default settings",
		Example: "  lcsubmit init --codefile ~/leetcode/code.cpp",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.configPath); err == nil && !force {
				return pkgerrors.BadRequest(fmt.Sprintf("%s already exists; use --force to overwrite", opts.configPath))
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return pkgerrors.Wrapf(err, pkgerrors.FileReadFailed, "%v", err)
			}
			cfg := config.Default()
			if strings.TrimSpace(codeFile) != "" {
				cfg.FilePath.Default.CodeFile = codeFile
			}
			if err := config.Save(opts.configPath, cfg); err != nil {
				return pkgerrors.Wrapf(err, pkgerrors.FileWriteFailed, "%v", err)
			}
			opts.notifier.Info("configuration written to %s", opts.configPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&codeFile, "codefile", "", "value for filePath.default.codefile")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
