package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pterodactyl/pa/filesystem"
)

var mkdirArgs struct {
	Force bool
	Mode  string
}

func newMkdirCommand(args *rootArgs) *cobra.Command {
	command := &cobra.Command{
		Use:   "mkdir PATH...",
		Short: "Create directories along with any missing parents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, a []string) error {
			mode, err := parseMode(mkdirArgs.Mode)
			if err != nil {
				return err
			}
			o := args.options(cmd)
			o.Force = mkdirArgs.Force
			o.Mode = mode
			return filesystem.Mkdir(o, a...)
		},
	}

	command.Flags().BoolVarP(&mkdirArgs.Force, "force", "f", false, "do not fail for existing directories")
	command.Flags().StringVarP(&mkdirArgs.Mode, "mode", "m", "", "octal mode for every directory created (default from configuration)")

	return command
}
