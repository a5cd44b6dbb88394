// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mvnrepo/internal/adapters/config"
	_ "go.trai.ch/mvnrepo/internal/adapters/logger"
	_ "go.trai.ch/mvnrepo/internal/adapters/properties"
	// Register app nodes.
	_ "go.trai.ch/mvnrepo/internal/app"
)
