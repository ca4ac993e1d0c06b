package textio

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wshpack/internal/core/ports"
)

const (
	// ReaderNodeID is the unique identifier for the source reader Graft node.
	ReaderNodeID graft.ID = "adapter.textio.reader"
	// WriterNodeID is the unique identifier for the bundle writer Graft node.
	WriterNodeID graft.ID = "adapter.textio.writer"
)

func init() {
	graft.Register(graft.Node[ports.SourceReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceReader, error) {
			return NewReader(), nil
		},
	})

	graft.Register(graft.Node[ports.BundleWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BundleWriter, error) {
			return NewWriter(), nil
		},
	})
}
