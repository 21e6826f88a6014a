// Package geo implements the Geocoder port using the Nominatim search API.
package geo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go.trai.ch/zerr"

	"github.com/sanbobsan/weather-cli/internal/adapters/api"
	"github.com/sanbobsan/weather-cli/internal/core/domain"
	"github.com/sanbobsan/weather-cli/internal/core/ports"
)

const nominatimSearchURL = "https://nominatim.openstreetmap.org/search"

// nominatimResult is a single entry of the Nominatim search response.
// Coordinates arrive as strings.
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Geocoder implements ports.Geocoder backed by Nominatim with a local cache.
type Geocoder struct {
	cache      ports.LocationCache
	httpClient *http.Client
	baseURL    string
}

// NewGeocoder creates a Geocoder that consults the given cache before the network.
func NewGeocoder(cache ports.LocationCache) *Geocoder {
	return newGeocoderWithBase(cache, nominatimSearchURL)
}

// newGeocoderWithBase creates a Geocoder against a custom endpoint (used for testing).
func newGeocoderWithBase(cache ports.LocationCache, baseURL string) *Geocoder {
	return &Geocoder{
		cache:      cache,
		httpClient: api.NewClient(),
		baseURL:    baseURL,
	}
}

// Geocode resolves a free-form query to a Location. Cache hits skip the
// network entirely; fresh results are stored for next time.
func (g *Geocoder) Geocode(ctx context.Context, query string) (domain.Location, error) {
	if cached, err := g.cache.Get(query); err == nil && cached != nil {
		return *cached, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	var results []nominatimResult
	if err := api.GetJSON(ctx, g.httpClient, g.baseURL, params, &results); err != nil {
		return domain.Location{}, zerr.Wrap(err, domain.ErrGeocodeRequestFailed.Error())
	}

	if len(results) == 0 {
		return domain.Location{}, zerr.With(domain.ErrLocationNotFound, "query", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Location{}, zerr.Wrap(err, domain.ErrGeocodeParseFailed.Error())
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Location{}, zerr.Wrap(err, domain.ErrGeocodeParseFailed.Error())
	}

	loc := domain.Location{
		DisplayName: results[0].DisplayName,
		Latitude:    domain.RoundCoordinate(lat),
		Longitude:   domain.RoundCoordinate(lon),
	}

	// A cache write failure is not critical for the lookup itself.
	_ = g.cache.Put(query, loc)

	return loc, nil
}
