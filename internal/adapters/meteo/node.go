package meteo

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/sanbobsan/weather-cli/internal/core/ports"
)

// NodeID is the unique identifier for the forecast provider Graft node.
const NodeID graft.ID = "adapter.forecast"

func init() {
	graft.Register(graft.Node[ports.ForecastProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ForecastProvider, error) {
			return NewClient(), nil
		},
	})
}
