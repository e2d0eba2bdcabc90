package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pterodactyl/pa/filesystem"
)

var moveArgs struct {
	Force bool
	Mkdir bool
}

func newMoveCommand(args *rootArgs) *cobra.Command {
	command := &cobra.Command{
		Use:   "mv SOURCE... DEST",
		Short: "Move or rename files and directories",
		Long: `Move files and directories to a destination, copying them when the destination is
on a different filesystem. With --force a directory is merged into an existing
directory of the same name.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, a []string) error {
			o := args.options(cmd)
			o.Force = moveArgs.Force
			o.Mkdir = moveArgs.Mkdir
			return filesystem.Move(a[:len(a)-1], a[len(a)-1], o)
		},
	}

	command.Flags().BoolVarP(&moveArgs.Force, "force", "f", false, "overwrite or merge into existing destinations")
	command.Flags().BoolVarP(&moveArgs.Mkdir, "mkdir", "p", false, "create the destination directory if it does not exist")

	return command
}
