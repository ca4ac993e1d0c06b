package domain

import "path/filepath"

const (
	// PackageFileName is the descriptor looked up when the source is a directory.
	PackageFileName = "Package.wsf"

	// ConfigFileName is the optional project configuration file next to the descriptor.
	ConfigFileName = "wshpack.yaml"

	// StateDirName is the name of the internal state directory.
	StateDirName = ".wshpack"

	// StoreDirName is the name of the build info store directory.
	StoreDirName = "store"

	// EOL is the line ending of every generated file.
	EOL = "\r\n"

	// BundleJobID is the id of the single job emitted into a .wsf bundle.
	BundleJobID = "run"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the build info store path relative to a package directory.
func DefaultStorePath() string {
	return filepath.Join(StateDirName, StoreDirName)
}

func joinRoot(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
