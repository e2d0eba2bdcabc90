package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pterodactyl/pa/filesystem"
)

var listArgs struct {
	Recursive     bool
	PostOrder     bool
	FollowSymlink bool
}

func newListCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "ls [DIR]",
		Short: "List the entries of a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, a []string) error {
			dir := "."
			if len(a) > 0 {
				dir = a[0]
			}
			out := cmd.OutOrStdout()
			show := func(e filesystem.Entry) error {
				_, err := fmt.Fprintln(out, colorize(e))
				return err
			}
			if !listArgs.Recursive {
				entries, err := filesystem.Each(dir)
				if err != nil {
					return err
				}
				for _, e := range entries {
					if err := show(e); err != nil {
						return err
					}
				}
				return nil
			}
			return filesystem.EachR(dir, show, filesystem.WalkOptions{
				PostOrder:     listArgs.PostOrder,
				FollowSymlink: listArgs.FollowSymlink,
			})
		},
	}

	command.Flags().BoolVarP(&listArgs.Recursive, "recursive", "r", false, "list every entry below the directory")
	command.Flags().BoolVar(&listArgs.PostOrder, "post-order", false, "list directories after their contents")
	command.Flags().BoolVarP(&listArgs.FollowSymlink, "dereference", "L", false, "descend into symbolic links to directories")

	return command
}

func colorize(e filesystem.Entry) string {
	switch e.Type {
	case filesystem.TypeDirectory:
		return color.New(color.FgBlue, color.Bold).Sprint(e.Path.String() + "/")
	case filesystem.TypeSymlink:
		return color.CyanString(e.Path.String())
	case filesystem.TypeSocket:
		return color.MagentaString(e.Path.String())
	}
	return e.Path.String()
}
