// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/sanbobsan/weather-cli/internal/adapters/geo"
	_ "github.com/sanbobsan/weather-cli/internal/adapters/logger"
	_ "github.com/sanbobsan/weather-cli/internal/adapters/meteo"
	_ "github.com/sanbobsan/weather-cli/internal/adapters/storage"
	// Register app nodes.
	_ "github.com/sanbobsan/weather-cli/internal/app"
)
