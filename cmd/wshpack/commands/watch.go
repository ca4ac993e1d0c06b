package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wshpack/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [source]",
		Short: "Rebundle a .wsf package whenever its sources change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debounce, _ := cmd.Flags().GetDuration("debounce")
			return c.app.Watch(cmd.Context(), sourceArg(args), app.WatchOptions{
				BundleOptions: bundleOptions(cmd),
				Debounce:      debounce,
			})
		},
	}
	addBundleFlags(cmd)
	cmd.Flags().Duration("debounce", 0, "Quiet period before rebundling (default 100ms)")
	return cmd
}
