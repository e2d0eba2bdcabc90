package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pterodactyl/pa/system"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version along with details about the host system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := system.GetSystemInformation()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Version:\t%s\n", info.Version)
			fmt.Fprintf(w, "Kernel:\t%s\n", info.KernelVersion)
			fmt.Fprintf(w, "Architecture:\t%s\n", info.Architecture)
			fmt.Fprintf(w, "OS:\t%s\n", info.OS)
			fmt.Fprintf(w, "CPUs:\t%d\n", info.CpuCount)
			return w.Flush()
		},
	}
}
