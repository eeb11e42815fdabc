package status

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stitch-dev/stitch/pkg/commands"
	"github.com/stitch-dev/stitch/pkg/commands/status"
	"github.com/stitch-dev/stitch/pkg/style"
)

// NewCommand creates the status command
func NewCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "status",
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

			report, err := status.Status(status.Options{ProjectRoot: root})
			if err != nil {
				return err
			}

			switch output {
			case "text":
				fmt.Fprint(cmd.OutOrStdout(), style.Default().Report(report))
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer func() { _ = enc.Close() }()
				return enc.Encode(report)
			default:
				return fmt.Errorf(MsgErrOutput, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", MsgFlagOutput)

	return cmd
}
