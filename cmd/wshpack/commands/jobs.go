package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newJobsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jobs [source]",
		Short: "List the jobs of a .wsf package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, err := c.app.Jobs(sourceArg(args))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for i := range pkg.Jobs {
				job := &pkg.Jobs[i]
				_, _ = fmt.Fprintf(w, "%s\t%s\t%d scripts\n", job.ID, job.Kind(), len(job.Scripts))
			}
			return w.Flush()
		},
	}
}
