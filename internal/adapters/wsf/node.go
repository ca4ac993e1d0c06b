package wsf

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wshpack/internal/adapters/textio"
	"go.trai.ch/wshpack/internal/core/ports"
)

// NodeID is the unique identifier for the descriptor parser Graft node.
const NodeID graft.ID = "adapter.wsf"

func init() {
	graft.Register(graft.Node[ports.DescriptorParser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{textio.ReaderNodeID},
		Run: func(ctx context.Context) (ports.DescriptorParser, error) {
			reader, err := graft.Dep[ports.SourceReader](ctx)
			if err != nil {
				return nil, err
			}
			return NewParser(reader), nil
		},
	})
}
