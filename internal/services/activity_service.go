package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"odyssey/internal/infra"
	"odyssey/internal/models/response_models"
)

const (
	activitySearchRadiusM = 10000
	maxActivities         = 10
)

type ActivityServiceInterface interface {
	FindNearbyActivities(ctx context.Context, location response_models.Coordinates, interests []string) ([]response_models.Activity, error)
}

type ActivityService struct {
	places infra.PlacesClientInterface
	logger *zap.Logger
}

func NewActivityService(places infra.PlacesClientInterface, logger *zap.Logger) ActivityServiceInterface {
	return &ActivityService{
		places: places,
		logger: logger,
	}
}

// FindNearbyActivities looks for tourist attractions within 10 km, using the
// user's interests as a keyword filter. Zero results is not an error: it
// signals the itinerary agent to synthesize plausible activities instead.
func (s *ActivityService) FindNearbyActivities(ctx context.Context, location response_models.Coordinates, interests []string) ([]response_models.Activity, error) {
	s.logger.Info("finding nearby activities", zap.Strings("interests", interests))

	results, err := s.places.NearbySearch(ctx, infra.NearbySearchRequest{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		RadiusM:   activitySearchRadiusM,
		PlaceType: "tourist_attraction",
		Keyword:   strings.Join(interests, " "),
	})
	if err != nil {
		return nil, fmt.Errorf("nearby activity search: %w", err)
	}

	if len(results) > maxActivities {
		results = results[:maxActivities]
	}

	activities := make([]response_models.Activity, 0, len(results))
	for _, place := range results {
		activities = append(activities, response_models.Activity{
			Description: place.Name,
			Price:       FormatPriceLabel(place.PriceLevel),
			Location:    place.Location,
		})
	}

	s.logger.Info("activity search complete", zap.Int("found", len(activities)))
	return activities, nil
}
