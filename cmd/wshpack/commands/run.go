package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wshpack/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [source]",
		Short: "Bundle a job and execute it with the script host",
		Long: "Run bundles a single job and executes the output. Without --job the package\n" +
			"must contain exactly one job.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _ := cmd.Flags().GetStringArray("engine")
			return c.app.Run(cmd.Context(), sourceArg(args), app.RunOptions{
				BundleOptions: bundleOptions(cmd),
				Engine:        engine,
				Stdout:        cmd.OutOrStdout(),
				Stderr:        cmd.ErrOrStderr(),
			})
		},
	}
	addBundleFlags(cmd)
	cmd.Flags().StringArray("engine", nil, "Script host command and arguments (repeatable, default cscript //nologo)")
	return cmd
}
