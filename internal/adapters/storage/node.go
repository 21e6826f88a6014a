package storage

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/sanbobsan/weather-cli/internal/core/ports"
)

const (
	// ConfigStoreNodeID is the unique identifier for the config store Graft node.
	ConfigStoreNodeID graft.ID = "adapter.config_store"
	// LocationCacheNodeID is the unique identifier for the location cache Graft node.
	LocationCacheNodeID graft.ID = "adapter.location_cache"
)

func init() {
	graft.Register(graft.Node[ports.ConfigStore]{
		ID:        ConfigStoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigStore, error) {
			return NewConfigStore()
		},
	})

	graft.Register(graft.Node[ports.LocationCache]{
		ID:        LocationCacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LocationCache, error) {
			return NewLocationCache()
		},
	})
}
