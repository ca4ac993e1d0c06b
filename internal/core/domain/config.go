package domain

// Config is the project configuration read from wshpack.yaml.
// Nil pointers and empty values mean "not set" so that flags and defaults can fill them.
type Config struct {
	BaseDir        string
	DestDir        string
	Minify         *bool
	Ignore         []string
	SourceEncoding string
	OutputEncoding string
	BOM            *bool
	Engine         []string
}

// DefaultEngine is the command used to run a bundle.
func DefaultEngine() []string {
	return []string{"cscript", "//nologo"}
}

// PackOptions resolves the configuration into run options.
// Relative directories are interpreted against root.
func (c *Config) PackOptions(root string) (PackOptions, error) {
	opts := DefaultPackOptions()
	opts.Bundle.BaseDir = root

	if c == nil {
		return opts, nil
	}

	if c.BaseDir != "" {
		opts.Bundle.BaseDir = joinRoot(root, c.BaseDir)
	}
	if c.DestDir != "" {
		opts.DestDir = joinRoot(root, c.DestDir)
	}
	if c.Minify != nil {
		opts.Bundle.Minify = *c.Minify
	}
	if c.SourceEncoding != "" {
		opts.Bundle.SourceEncoding = c.SourceEncoding
	}
	if c.OutputEncoding != "" {
		opts.Write.Encoding = c.OutputEncoding
	}
	if c.BOM != nil {
		opts.Write.BOM = *c.BOM
	}

	ignore, err := CompileIgnore(c.Ignore)
	if err != nil {
		return PackOptions{}, err
	}
	opts.Bundle.Ignore = ignore

	return opts, nil
}

// EngineCommand returns the configured engine or the default one.
func (c *Config) EngineCommand() []string {
	if c == nil || len(c.Engine) == 0 {
		return DefaultEngine()
	}
	return c.Engine
}
