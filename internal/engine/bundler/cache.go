package bundler

import (
	"fmt"
	"time"

	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// checkCacheHit reports whether the output at outPath was produced from
// inputHash and has not been touched since.
func (b *Bundler) checkCacheHit(root, outPath, inputHash string) bool {
	info, err := b.store.Get(root, outPath)
	if err != nil || info == nil || info.InputHash != inputHash {
		return false
	}

	outputHash, err := b.outputHash(outPath)
	if err != nil {
		return false
	}
	return outputHash == info.OutputHash
}

func (b *Bundler) updateCache(root, outPath, inputHash string) error {
	outputHash, err := b.outputHash(outPath)
	if err != nil {
		return err
	}

	info := domain.BuildInfo{
		JobKey:     outPath,
		OutputPath: outPath,
		InputHash:  inputHash,
		OutputHash: outputHash,
		Timestamp:  time.Now(),
	}
	if err := b.store.Put(root, info); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to store build info"), "path", outPath)
	}
	return nil
}

func (b *Bundler) outputHash(path string) (string, error) {
	h, err := b.hasher.ComputeFileHash(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h), nil
}
