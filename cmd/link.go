package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pterodactyl/pa/filesystem"
)

var linkArgs struct {
	Symbolic bool
	Force    bool
}

func newLinkCommand(args *rootArgs) *cobra.Command {
	command := &cobra.Command{
		Use:   "ln TARGET... LINK",
		Short: "Create hard or symbolic links",
		Long: `Create links to each target. When LINK is an existing directory the links are
created inside of it using the name of each target.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, a []string) error {
			o := args.options(cmd)
			o.Force = linkArgs.Force
			srcs, dst := a[:len(a)-1], a[len(a)-1]
			if linkArgs.Symbolic {
				return filesystem.Symlink(srcs, dst, o)
			}
			return filesystem.Link(srcs, dst, o)
		},
	}

	command.Flags().BoolVarP(&linkArgs.Symbolic, "symbolic", "s", false, "create symbolic links instead of hard links")
	command.Flags().BoolVarP(&linkArgs.Force, "force", "f", false, "remove existing destinations")

	return command
}
