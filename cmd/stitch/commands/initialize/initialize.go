package initialize

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stitch-dev/stitch/pkg/commands/initialize"
	"github.com/stitch-dev/stitch/pkg/style"
)

// NewCommand creates the init command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			result, err := initialize.Init(initialize.Options{ProjectRoot: cwd})
			if err != nil {
				return err
			}

			r := style.Default()
			fmt.Fprintln(cmd.OutOrStdout(), r.Success(MsgDone, result.StatePath))
			return nil
		},
	}
}
