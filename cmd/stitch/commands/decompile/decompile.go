package decompile

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stitch-dev/stitch/pkg/commands"
	"github.com/stitch-dev/stitch/pkg/commands/decompile"
	"github.com/stitch-dev/stitch/pkg/style"
)

func absolutize(args []string) ([]string, error) {
	files := make([]string, len(args))
	for i, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		files[i] = abs
	}
	return files, nil
}

// NewCommand creates the decompile command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decompile <file>...",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := commands.FindProjectRoot(".")
			if err != nil {
				return err
			}

			// Arguments are relative to the cwd, which may be a
			// subdirectory of the project root.
			files, err := absolutize(args)
			if err != nil {
				return err
			}

			result, err := decompile.Decompile(decompile.Options{
				ProjectRoot: root,
				Files:       files,
			})
			if err != nil {
				return err
			}

			r := style.Default()
			fmt.Fprintln(cmd.OutOrStdout(),
				r.Success(MsgDone, result.Restored, result.FilesWritten))
			return nil
		},
	}
}
