package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"odyssey/internal/infra"
	"odyssey/internal/models/response_models"
	"odyssey/pkg/utils"
)

type LocationServiceInterface interface {
	ResolveLocation(ctx context.Context, locationName string) (*response_models.LocationData, error)
}

type LocationService struct {
	places infra.PlacesClientInterface
	agents AgentServiceInterface
	logger *zap.Logger
}

func NewLocationService(places infra.PlacesClientInterface, agents AgentServiceInterface, logger *zap.Logger) LocationServiceInterface {
	return &LocationService{
		places: places,
		agents: agents,
		logger: logger,
	}
}

// ResolveLocation turns a free-text place name into coordinates plus the
// primary IATA airport code. Coordinates come from the place provider first;
// the airport code is then resolved by the IATA agent from the original name,
// not the coordinates. Both lookups must succeed.
func (s *LocationService) ResolveLocation(ctx context.Context, locationName string) (*response_models.LocationData, error) {
	if strings.TrimSpace(locationName) == "" {
		return nil, fmt.Errorf("%w: location name cannot be empty", utils.ErrInvalidInput)
	}

	s.logger.Info("resolving location", zap.String("location", locationName))

	candidates, err := s.places.FindPlaceFromText(ctx, locationName)
	if err != nil {
		return nil, fmt.Errorf("find place for %q: %w", locationName, err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: could not find location data for %q", utils.ErrLocationNotFound, locationName)
	}
	place := candidates[0]

	iataCode, err := s.agents.ResolveIATACode(ctx, locationName)
	if err != nil {
		return nil, fmt.Errorf("resolve IATA code for %q: %w", locationName, err)
	}

	s.logger.Info("resolved location",
		zap.String("location", locationName),
		zap.String("iata", iataCode),
		zap.Float64("lat", place.Location.Latitude),
		zap.Float64("lng", place.Location.Longitude))

	return &response_models.LocationData{
		IATA:      iataCode,
		Latitude:  place.Location.Latitude,
		Longitude: place.Location.Longitude,
	}, nil
}
