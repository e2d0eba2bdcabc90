package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/pterodactyl/pa/filesystem"
	"github.com/pterodactyl/pa/system"
)

var statArgs struct {
	JSON bool
}

func newStatCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "stat PATH...",
		Short: "Describe files and directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, a []string) error {
			out := cmd.OutOrStdout()
			for _, p := range a {
				d, err := filesystem.Inspect(p)
				if err != nil {
					return err
				}
				if statArgs.JSON {
					b, err := json.Marshal(d)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, string(b))
					continue
				}
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintf(w, "Path:\t%s\n", d.Path)
				fmt.Fprintf(w, "Type:\t%s\n", d.Type)
				if d.Target != "" {
					fmt.Fprintf(w, "Target:\t%s\n", d.Target)
				}
				fmt.Fprintf(w, "Size:\t%s\n", system.FormatBytes(d.Size))
				fmt.Fprintf(w, "Mode:\t%04o (%s)\n", d.Mode&os.ModePerm, d.Mode)
				fmt.Fprintf(w, "Mime:\t%s\n", d.Mimetype)
				fmt.Fprintf(w, "Accessed:\t%s\n", d.AccessTime.Format(time.RFC1123Z))
				fmt.Fprintf(w, "Modified:\t%s\n", d.ModTime.Format(time.RFC1123Z))
				fmt.Fprintf(w, "Changed:\t%s\n", d.ChangeTime.Format(time.RFC1123Z))
				if err := w.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}

	command.Flags().BoolVar(&statArgs.JSON, "json", false, "print the details as JSON")

	return command
}
