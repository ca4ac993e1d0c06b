// Package commands implements the CLI commands for wshpack.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/wshpack/internal/app"
	"go.trai.ch/wshpack/internal/build"
	"go.trai.ch/wshpack/internal/core/domain"
)

// CLI represents the command line interface for wshpack.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Bundle(ctx context.Context, source string, opts app.BundleOptions) ([]domain.JobResult, error)
	Jobs(source string) (*domain.Package, error)
	Run(ctx context.Context, source string, opts app.RunOptions) error
	Watch(ctx context.Context, source string, opts app.WatchOptions) error
	Clean(ctx context.Context, source string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "wshpack",
		Short:         "Bundle and minify Windows Script Host packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBundleCmd())
	rootCmd.AddCommand(c.newJobsCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// sourceArg returns the package source argument, defaulting to the working directory.
func sourceArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
