package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for jobs and files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(fmt.Errorf("%w: %w", domain.ErrFileHashFailed, err), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(fmt.Errorf("%w: %w", domain.ErrFileHashFailed, err), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeInputHash computes a single hash over the job definition,
// the options that shape the output and the content of every source.
func (h *Hasher) ComputeInputHash(job *domain.Job, opts domain.PackOptions, sources []string) (string, error) {
	hasher := xxhash.New()

	h.hashJob(job, hasher)
	h.hashOptions(opts, hasher)

	for _, path := range sources {
		_, _ = hasher.WriteString(path)
		_, _ = hasher.Write([]byte{0})

		hash, err := h.ComputeFileHash(path)
		if err != nil {
			return "", err
		}
		if err := binary.Write(hasher, binary.LittleEndian, hash); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashJob(job *domain.Job, hasher *xxhash.Digest) {
	_, _ = hasher.WriteString(job.ID)
	_, _ = hasher.Write([]byte{0})

	for _, s := range job.Scripts {
		_, _ = hasher.WriteString(s.Language.String())
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(s.Src)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(s.Inline)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, m := range job.Markup {
		_, _ = hasher.WriteString(m)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}

func (h *Hasher) hashOptions(opts domain.PackOptions, hasher *xxhash.Digest) {
	fields := []string{
		strconv.FormatBool(opts.Bundle.Minify),
		opts.Bundle.SourceEncoding,
		opts.Write.Encoding,
		strconv.FormatBool(opts.Write.BOM),
		opts.Write.EOL,
		strconv.FormatBool(opts.Write.TrimEnd),
	}
	for _, re := range opts.Bundle.Ignore {
		fields = append(fields, re.String())
	}

	for _, f := range fields {
		_, _ = hasher.WriteString(f)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}
