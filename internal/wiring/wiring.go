// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wshpack/internal/adapters/cas"
	_ "go.trai.ch/wshpack/internal/adapters/config"
	_ "go.trai.ch/wshpack/internal/adapters/fs"
	_ "go.trai.ch/wshpack/internal/adapters/logger"
	_ "go.trai.ch/wshpack/internal/adapters/minify"
	_ "go.trai.ch/wshpack/internal/adapters/shell"
	_ "go.trai.ch/wshpack/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/wshpack/internal/adapters/textio"
	_ "go.trai.ch/wshpack/internal/adapters/watcher"
	_ "go.trai.ch/wshpack/internal/adapters/wsf"
	// Register app and engine nodes.
	_ "go.trai.ch/wshpack/internal/app"
	_ "go.trai.ch/wshpack/internal/engine/bundler"
)
