package cmd

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/pterodactyl/pa/filesystem"
)

var splitArgs struct {
	All  bool
	JSON bool
}

func newSplitCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "split PATH...",
		Short: "Print the components of a path",
		Long: `Print the directory and base name of each path. With --all every component of
the path is printed. With --json the dir, base, name, ext and fext of each path
are printed as a JSON object.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, a []string) error {
			out := cmd.OutOrStdout()
			for _, v := range a {
				p := filesystem.New(v)
				if !splitArgs.JSON {
					for _, part := range p.Split(splitArgs.All) {
						fmt.Fprintln(out, part)
					}
					continue
				}
				b, err := json.Marshal(map[string]interface{}{
					"path":  p.String(),
					"dir":   p.Dir(),
					"base":  p.Base(),
					"name":  p.Name(),
					"ext":   p.Ext(),
					"fext":  p.Fext(),
					"parts": p.Split(true),
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(b))
			}
			return nil
		},
	}

	command.Flags().BoolVarP(&splitArgs.All, "all", "a", false, "print every component of the path")
	command.Flags().BoolVar(&splitArgs.JSON, "json", false, "print the components as JSON")

	return command
}
