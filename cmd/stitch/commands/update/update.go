package update

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stitch-dev/stitch/pkg/commands"
	"github.com/stitch-dev/stitch/pkg/commands/update"
	"github.com/stitch-dev/stitch/pkg/style"
)

// NewCommand creates the update command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "update",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := commands.FindProjectRoot(".")
			if err != nil {
				return err
			}

			result, err := update.Update(update.Options{ProjectRoot: root})
			if err != nil {
				return err
			}

			r := style.Default()
			fmt.Fprintln(cmd.OutOrStdout(),
				r.Success(MsgDone, result.Updated, result.FilesWritten))
			return nil
		},
	}
}
