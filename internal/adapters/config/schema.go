package config

// Manifest represents the structure of the wshpack.yaml configuration file.
type Manifest struct {
	Version  string      `yaml:"version"`
	BaseDir  string      `yaml:"baseDir"`
	DestDir  string      `yaml:"destDir"`
	Minify   *bool       `yaml:"minify"`
	Ignore   []string    `yaml:"ignore"`
	Encoding EncodingDTO `yaml:"encoding"`
	Engine   []string    `yaml:"engine"`
}

// EncodingDTO groups the text encoding settings.
type EncodingDTO struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	BOM    *bool  `yaml:"bom"`
}
