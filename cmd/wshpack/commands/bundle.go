package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle [source]",
		Short: "Bundle the jobs of a .wsf package",
		Long: "Bundle resolves every script of every job in the package, minifies it and\n" +
			"writes one output per job. The source is a .wsf file or a directory holding one.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Bundle(cmd.Context(), sourceArg(args), bundleOptions(cmd))
			return err
		},
	}
	addBundleFlags(cmd)
	return cmd
}
