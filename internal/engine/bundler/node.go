package bundler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wshpack/internal/adapters/cas"
	"go.trai.ch/wshpack/internal/adapters/fs"
	"go.trai.ch/wshpack/internal/adapters/logger"
	"go.trai.ch/wshpack/internal/adapters/minify"
	"go.trai.ch/wshpack/internal/adapters/telemetry/progrock"
	"go.trai.ch/wshpack/internal/adapters/textio"
	"go.trai.ch/wshpack/internal/adapters/wsf"
	"go.trai.ch/wshpack/internal/core/ports"
)

// NodeID is the unique identifier for the bundler Graft node.
const NodeID graft.ID = "engine.bundler"

func init() {
	graft.Register(graft.Node[*Bundler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			wsf.NodeID,
			textio.ReaderNodeID,
			textio.WriterNodeID,
			minify.NodeID,
			fs.ResolverNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Bundler, error) {
			parser, err := graft.Dep[ports.DescriptorParser](ctx)
			if err != nil {
				return nil, err
			}
			reader, err := graft.Dep[ports.SourceReader](ctx)
			if err != nil {
				return nil, err
			}
			writer, err := graft.Dep[ports.BundleWriter](ctx)
			if err != nil {
				return nil, err
			}
			minifier, err := graft.Dep[ports.Minifier](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.SourceResolver](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(parser, reader, writer, minifier, resolver, hasher, store, telemetry, log), nil
		},
	})
}
