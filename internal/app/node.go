package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/sanbobsan/weather-cli/internal/adapters/geo"
	"github.com/sanbobsan/weather-cli/internal/adapters/logger"
	"github.com/sanbobsan/weather-cli/internal/adapters/meteo"
	"github.com/sanbobsan/weather-cli/internal/adapters/storage"
	"github.com/sanbobsan/weather-cli/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			storage.ConfigStoreNodeID,
			storage.LocationCacheNodeID,
			geo.NodeID,
			meteo.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			config, err := graft.Dep[ports.ConfigStore](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.LocationCache](ctx)
			if err != nil {
				return nil, err
			}
			geocoder, err := graft.Dep[ports.Geocoder](ctx)
			if err != nil {
				return nil, err
			}
			forecast, err := graft.Dep[ports.ForecastProvider](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(config, cache, geocoder, forecast, log),
				Logger: log,
			}, nil
		},
	})
}
