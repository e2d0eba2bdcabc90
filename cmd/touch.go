package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pterodactyl/pa/filesystem"
)

var touchArgs struct {
	Force bool
	Mkdir bool
	Mode  string
}

func newTouchCommand(args *rootArgs) *cobra.Command {
	command := &cobra.Command{
		Use:   "touch PATH...",
		Short: "Create empty files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, a []string) error {
			mode, err := parseMode(touchArgs.Mode)
			if err != nil {
				return err
			}
			o := args.options(cmd)
			o.Force = touchArgs.Force
			o.Mkdir = touchArgs.Mkdir
			o.Mode = mode
			return filesystem.Touch(o, a...)
		},
	}

	command.Flags().BoolVarP(&touchArgs.Force, "force", "f", false, "do not fail for existing files")
	command.Flags().BoolVarP(&touchArgs.Mkdir, "mkdir", "p", false, "create missing parent directories")
	command.Flags().StringVarP(&touchArgs.Mode, "mode", "m", "", "octal mode for the created files (default from configuration)")

	return command
}
