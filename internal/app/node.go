package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wshpack/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/wshpack/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/wshpack/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/wshpack/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/wshpack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/wshpack/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/wshpack/internal/engine/bundler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			bundler.NodeID,
			shell.NodeID,
			watcher.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.SourceResolver](ctx)
	if err != nil {
		return nil, err
	}

	b, err := graft.Dep[*bundler.Bundler](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
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

	return New(loader, resolver, b, executor, w, telemetry, log), nil
}
