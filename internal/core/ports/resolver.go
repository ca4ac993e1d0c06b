package ports

// SourceResolver maps user supplied paths to files on disk.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type SourceResolver interface {
	// ResolvePackage returns the absolute path of the descriptor for source.
	// A directory resolves to its Package.wsf.
	ResolvePackage(source string) (string, error)

	// ResolveScript returns the absolute path of src relative to baseDir.
	// It fails when the file does not exist.
	ResolveScript(baseDir, src string) (string, error)
}
