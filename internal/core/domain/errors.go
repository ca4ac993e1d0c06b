package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyArgument is returned when a bundling operation receives no scripts.
	ErrEmptyArgument = zerr.New("nothing to bundle")

	// ErrSourceRequired is returned when no package source is given.
	ErrSourceRequired = zerr.New("package source is required")

	// ErrSourceNotFound is returned when the package source does not exist.
	ErrSourceNotFound = zerr.New("package source not found")

	// ErrScriptNotFound is returned when a script referenced by a job does not exist.
	ErrScriptNotFound = zerr.New("script source not found")

	// ErrInvalidDescriptor is returned when a .wsf file cannot be tokenized.
	ErrInvalidDescriptor = zerr.New("invalid wsf descriptor")

	// ErrNoPackage is returned when a descriptor does not declare a package.
	ErrNoPackage = zerr.New("package element is not defined")

	// ErrNoJob is returned when a package declares no job.
	ErrNoJob = zerr.New("job element is not defined")

	// ErrMissingJobID is returned when a job has no id attribute.
	ErrMissingJobID = zerr.New("job id is not defined")

	// ErrDuplicateJobID is returned when two jobs of a package share an id.
	ErrDuplicateJobID = zerr.New("duplicate job id")

	// ErrJobNotFound is returned when the requested job is not part of the package.
	ErrJobNotFound = zerr.New("job not found")

	// ErrUnsupportedLanguage is returned for script languages other than JScript and VBScript.
	ErrUnsupportedLanguage = zerr.New("unsupported script language")

	// ErrUnsupportedJobType is returned when a job id does not end with .wsf, .js or .vbs.
	ErrUnsupportedJobType = zerr.New("unsupported job type, expected .wsf, .js or .vbs")

	// ErrLanguageMismatch is returned when a flat bundle mixes script languages.
	ErrLanguageMismatch = zerr.New("script language does not match job type")

	// ErrInlineNotAllowed is returned when a flat bundle contains an inline script.
	ErrInlineNotAllowed = zerr.New("inline scripts are only supported in .wsf jobs")

	// ErrMinifyFailed is returned when the minifier rejects a source.
	ErrMinifyFailed = zerr.New("failed to minify script")

	// ErrUnknownEncoding is returned for encoding labels that are not recognized.
	ErrUnknownEncoding = zerr.New("unknown text encoding")

	// ErrReadFailed is returned when a source file cannot be read or decoded.
	ErrReadFailed = zerr.New("failed to read text file")

	// ErrWriteFailed is returned when a bundle cannot be encoded or written.
	ErrWriteFailed = zerr.New("failed to write text file")

	// ErrInvalidIgnorePattern is returned when an ignore pattern is not a valid regular expression.
	ErrInvalidIgnorePattern = zerr.New("invalid ignore pattern")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreCreateFailed is returned when the build info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build info store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrBundleFailed is returned when at least one job failed to bundle.
	ErrBundleFailed = zerr.New("bundle failed")

	// ErrEngineRequired is returned when no script engine command is configured.
	ErrEngineRequired = zerr.New("script engine command is required")

	// ErrEngineFailed is returned when the script engine exits with an error.
	ErrEngineFailed = zerr.New("script engine failed")
)
