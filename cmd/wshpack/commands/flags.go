package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wshpack/internal/app"
)

// addBundleFlags registers the flags shared by bundle, run and watch.
func addBundleFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("job", "j", "", "Only bundle the job with this id")
	flags.StringArray("ignore", nil, "Skip sources whose path matches this regular expression (repeatable)")
	flags.StringP("dest", "d", "", "Write outputs to this directory instead of next to the .wsf")
	flags.StringP("base", "b", "", "Resolve script sources against this directory")
	flags.Bool("no-minify", false, "Copy sources without minifying them")
	flags.StringP("encoding", "e", "", "Output text encoding (default utf-8)")
	flags.String("source-encoding", "", "Source text encoding when no BOM is present")
	flags.Bool("no-bom", false, "Do not write a byte order mark")
	flags.BoolP("force", "f", false, "Rewrite outputs even when they are up to date")
}

// bundleOptions reads the shared flags. Switches that were not given stay nil
// so that wshpack.yaml keeps control over them.
func bundleOptions(cmd *cobra.Command) app.BundleOptions {
	flags := cmd.Flags()

	var opts app.BundleOptions
	opts.JobID, _ = flags.GetString("job")
	opts.Force, _ = flags.GetBool("force")
	opts.Overrides.Ignore, _ = flags.GetStringArray("ignore")
	opts.Overrides.DestDir, _ = flags.GetString("dest")
	opts.Overrides.BaseDir, _ = flags.GetString("base")
	opts.Overrides.OutputEncoding, _ = flags.GetString("encoding")
	opts.Overrides.SourceEncoding, _ = flags.GetString("source-encoding")

	if flags.Changed("no-minify") {
		noMinify, _ := flags.GetBool("no-minify")
		minify := !noMinify
		opts.Overrides.Minify = &minify
	}
	if flags.Changed("no-bom") {
		noBOM, _ := flags.GetBool("no-bom")
		bom := !noBOM
		opts.Overrides.BOM = &bom
	}

	return opts
}
