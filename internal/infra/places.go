package infra

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"odyssey/internal/models/response_models"
)

const placesBaseURL = "https://maps.googleapis.com/maps/api/place"

// Place is one listing from the place provider. Rating and PriceLevel are
// pointers because the provider omits them for many listings; callers apply
// defined fallbacks (missing rating counts as 0, missing price level maps to
// the "price varies" label).
type Place struct {
	Name             string
	Rating           *float64
	PriceLevel       *int
	Location         response_models.Coordinates
	Vicinity         string
	FormattedAddress string
}

// NearbySearchRequest parameterizes a proximity search. MinPrice/MaxPrice
// are nil when no price filter should be applied.
type NearbySearchRequest struct {
	Latitude  float64
	Longitude float64
	RadiusM   int
	PlaceType string
	Keyword   string
	MinPrice  *int
	MaxPrice  *int
}

// PlacesClientInterface wraps the three place-provider lookups the planner
// needs. Zero results is a valid empty response for all of them, never an
// error.
type PlacesClientInterface interface {
	FindPlaceFromText(ctx context.Context, query string) ([]Place, error)
	NearbySearch(ctx context.Context, req NearbySearchRequest) ([]Place, error)
	TextSearch(ctx context.Context, query, placeType string) ([]Place, error)
}

type placesClient struct {
	http   *resty.Client
	apiKey string
	logger *zap.Logger
}

func NewPlacesClient(apiKey, baseURL string, logger *zap.Logger) PlacesClientInterface {
	if baseURL == "" {
		baseURL = placesBaseURL
	}
	return &placesClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second),
		apiKey: apiKey,
		logger: logger,
	}
}

type placesGeometry struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type placesResult struct {
	Name             string         `json:"name"`
	Rating           *float64       `json:"rating"`
	PriceLevel       *int           `json:"price_level"`
	Geometry         placesGeometry `json:"geometry"`
	Vicinity         string         `json:"vicinity"`
	FormattedAddress string         `json:"formatted_address"`
}

type findPlaceResponse struct {
	Candidates []placesResult `json:"candidates"`
	Status     string         `json:"status"`
	ErrMessage string         `json:"error_message"`
}

type searchResponse struct {
	Results    []placesResult `json:"results"`
	Status     string         `json:"status"`
	ErrMessage string         `json:"error_message"`
}

func (c *placesClient) FindPlaceFromText(ctx context.Context, query string) ([]Place, error) {
	var out findPlaceResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"input":     query,
			"inputtype": "textquery",
			"fields":    "geometry,name",
			"key":       c.apiKey,
		}).
		SetResult(&out).
		Get("/findplacefromtext/json")
	if err != nil {
		return nil, fmt.Errorf("places find-place request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("places find-place failed with status %d: %s", resp.StatusCode(), resp.String())
	}
	if err := checkPlacesStatus(out.Status, out.ErrMessage); err != nil {
		return nil, err
	}

	return mapPlaces(out.Candidates), nil
}

func (c *placesClient) NearbySearch(ctx context.Context, req NearbySearchRequest) ([]Place, error) {
	params := map[string]string{
		"location": fmt.Sprintf("%f,%f", req.Latitude, req.Longitude),
		"radius":   strconv.Itoa(req.RadiusM),
		"key":      c.apiKey,
	}
	if req.PlaceType != "" {
		params["type"] = req.PlaceType
	}
	if req.Keyword != "" {
		params["keyword"] = req.Keyword
	}
	if req.MinPrice != nil {
		params["minprice"] = strconv.Itoa(*req.MinPrice)
	}
	if req.MaxPrice != nil {
		params["maxprice"] = strconv.Itoa(*req.MaxPrice)
	}

	var out searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get("/nearbysearch/json")
	if err != nil {
		return nil, fmt.Errorf("places nearby search request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("places nearby search failed with status %d: %s", resp.StatusCode(), resp.String())
	}
	if err := checkPlacesStatus(out.Status, out.ErrMessage); err != nil {
		return nil, err
	}

	c.logger.Debug("places nearby search",
		zap.String("type", req.PlaceType),
		zap.Int("results", len(out.Results)))

	return mapPlaces(out.Results), nil
}

func (c *placesClient) TextSearch(ctx context.Context, query, placeType string) ([]Place, error) {
	params := map[string]string{
		"query": query,
		"key":   c.apiKey,
	}
	if placeType != "" {
		params["type"] = placeType
	}

	var out searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get("/textsearch/json")
	if err != nil {
		return nil, fmt.Errorf("places text search request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("places text search failed with status %d: %s", resp.StatusCode(), resp.String())
	}
	if err := checkPlacesStatus(out.Status, out.ErrMessage); err != nil {
		return nil, err
	}

	return mapPlaces(out.Results), nil
}

// ZERO_RESULTS is a valid empty response; every other non-OK status is a
// provider failure.
func checkPlacesStatus(status, message string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	default:
		return fmt.Errorf("places API returned status %s: %s", status, message)
	}
}

func mapPlaces(results []placesResult) []Place {
	places := make([]Place, 0, len(results))
	for _, r := range results {
		places = append(places, Place{
			Name:       r.Name,
			Rating:     r.Rating,
			PriceLevel: r.PriceLevel,
			Location: response_models.Coordinates{
				Latitude:  r.Geometry.Location.Lat,
				Longitude: r.Geometry.Location.Lng,
			},
			Vicinity:         r.Vicinity,
			FormattedAddress: r.FormattedAddress,
		})
	}
	return places
}
