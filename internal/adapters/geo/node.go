package geo

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/sanbobsan/weather-cli/internal/adapters/storage"
	"github.com/sanbobsan/weather-cli/internal/core/ports"
)

// NodeID is the unique identifier for the geocoder Graft node.
const NodeID graft.ID = "adapter.geocoder"

func init() {
	graft.Register(graft.Node[ports.Geocoder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{storage.LocationCacheNodeID},
		Run: func(ctx context.Context) (ports.Geocoder, error) {
			cache, err := graft.Dep[ports.LocationCache](ctx)
			if err != nil {
				return nil, err
			}
			return NewGeocoder(cache), nil
		},
	})
}
