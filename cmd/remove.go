package cmd

import (
	"fmt"

	"emperror.dev/errors"
	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/pterodactyl/pa/filesystem"
)

var removeArgs struct {
	Recursive   bool
	Directory   bool
	Force       bool
	Interactive bool
}

func newRemoveCommand(args *rootArgs) *cobra.Command {
	command := &cobra.Command{
		Use:   "rm PATH...",
		Short: "Remove files or directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, a []string) error {
			o := args.options(cmd)
			o.Force = removeArgs.Force

			switch {
			case removeArgs.Interactive:
				return removeInteractive(o, removeArgs.Recursive, a, surveyConfirm)
			case removeArgs.Recursive:
				return filesystem.RmR(o, a...)
			case removeArgs.Directory:
				return filesystem.Rmdir(o, a...)
			}
			return filesystem.Rm(o, a...)
		},
	}

	command.Flags().BoolVarP(&removeArgs.Recursive, "recursive", "r", false, "remove directories and their contents")
	command.Flags().BoolVarP(&removeArgs.Directory, "dir", "d", false, "only remove directories, along with their contents")
	command.Flags().BoolVarP(&removeArgs.Force, "force", "f", false, "ignore missing paths and paths of the wrong type")
	command.Flags().BoolVarP(&removeArgs.Interactive, "interactive", "i", false, "prompt before every removal")

	return command
}

// removeInteractive asks for confirmation before removing each match. A
// directory is only offered for removal when running recursively.
func removeInteractive(o filesystem.Options, recursive bool, paths []string, confirm func(msg string) (bool, error)) error {
	var perr error
	err := filesystem.RmIf(o, func(p filesystem.Path) bool {
		if perr != nil {
			return false
		}
		if !recursive && p.IsDir() {
			if !o.Force {
				perr = filesystem.NewError(filesystem.ErrCodeIsDirectory, p.String())
			}
			return false
		}
		ok, err := confirm(fmt.Sprintf("Remove %s?", p))
		if err != nil {
			perr = err
			return false
		}
		return ok
	}, paths...)
	if errors.Is(perr, terminal.InterruptErr) {
		return nil
	}
	if err != nil {
		return err
	}
	return perr
}

func surveyConfirm(msg string) (bool, error) {
	var ok bool
	err := survey.AskOne(&survey.Confirm{Message: msg, Default: false}, &ok)
	return ok, err
}
