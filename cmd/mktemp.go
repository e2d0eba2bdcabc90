package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pterodactyl/pa/filesystem"
)

var mktempArgs struct {
	Directory bool
	TmpDir    string
	DryRun    bool
}

func newMktempCommand(args *rootArgs) *cobra.Command {
	command := &cobra.Command{
		Use:   "mktemp [NAME]",
		Short: "Create a uniquely named temporary file or directory",
		Long: `Create a temporary file, or directory with --directory, named "<NAME>.<TOKEN>"
where TOKEN is six random hexadecimal characters. The path is printed once created.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, a []string) error {
			var name string
			if len(a) > 0 {
				name = a[0]
			}
			o := args.options(cmd)
			o.TmpDir = mktempArgs.TmpDir

			var p filesystem.Path
			var err error
			switch {
			case mktempArgs.DryRun:
				p = filesystem.TempName(name, o)
			case mktempArgs.Directory:
				p, err = filesystem.MkTmpDir(name, o)
			default:
				p, err = filesystem.MkTmpFile(name, o)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	command.Flags().BoolVarP(&mktempArgs.Directory, "directory", "d", false, "create a directory instead of a file")
	command.Flags().StringVarP(&mktempArgs.TmpDir, "tmpdir", "p", "", "create the entry in this directory")
	command.Flags().BoolVarP(&mktempArgs.DryRun, "dry-run", "u", false, "only print a name, without creating anything")

	return command
}
