package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"odyssey/internal/infra"
	"odyssey/internal/models/request_models"
	"odyssey/internal/models/response_models"
	"odyssey/pkg/utils"
)

const lodgingSearchRadiusM = 20000

type AccommodationServiceInterface interface {
	SearchAccommodation(ctx context.Context, destinationName string, location response_models.Coordinates, prefs request_models.UserPreferences) (*response_models.Accommodation, error)
}

type AccommodationService struct {
	places infra.PlacesClientInterface
	logger *zap.Logger
}

func NewAccommodationService(places infra.PlacesClientInterface, logger *zap.Logger) AccommodationServiceInterface {
	return &AccommodationService{
		places: places,
		logger: logger,
	}
}

// FormatPriceLabel maps a provider price tier to one of four fixed labels.
func FormatPriceLabel(priceLevel *int) string {
	if priceLevel == nil {
		return "Price varies"
	}
	switch {
	case *priceLevel <= 1:
		return "$ - Budget-friendly"
	case *priceLevel == 2:
		return "$$ - Moderately priced"
	default:
		return "$$$ - Upscale"
	}
}

func budgetPriceRange(budget string) (int, int) {
	switch budget {
	case "Budget":
		return 0, 1
	case "Moderate":
		return 2, 2
	case "Luxury":
		return 3, 4
	default:
		return 0, 4
	}
}

// SearchAccommodation finds a place to stay with a widening fallback:
// a 20 km lodging search at the budget's price tier, the same search with
// the price constraint relaxed, and finally a free-text search for
// "lodging in {destination}". Among whichever attempt yields results, the
// highest-rated listing wins; a missing rating compares as 0.
func (s *AccommodationService) SearchAccommodation(ctx context.Context, destinationName string, location response_models.Coordinates, prefs request_models.UserPreferences) (*response_models.Accommodation, error) {
	minPrice, maxPrice := budgetPriceRange(prefs.Budget)

	s.logger.Info("searching accommodation",
		zap.String("destination", destinationName),
		zap.String("budget", prefs.Budget))

	results, err := s.nearbyLodging(ctx, location, minPrice, maxPrice)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		s.logger.Info("no lodging at requested budget, relaxing price range",
			zap.String("budget", prefs.Budget))
		results, err = s.nearbyLodging(ctx, location, 0, 4)
		if err != nil {
			return nil, err
		}
	}

	if len(results) == 0 {
		s.logger.Info("nearby lodging searches empty, falling back to text search",
			zap.String("destination", destinationName))
		results, err = s.places.TextSearch(ctx, fmt.Sprintf("lodging in %s", destinationName), "lodging")
		if err != nil {
			return nil, fmt.Errorf("lodging text search: %w", err)
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no accommodation in %s, even with a broad budget search", utils.ErrAccommodationNotFound, destinationName)
	}

	best := pickBestRated(results)

	ratingText := "N/A"
	if best.Rating != nil {
		ratingText = fmt.Sprintf("%.1f", *best.Rating)
	}
	address := best.Vicinity
	if address == "" {
		address = best.FormattedAddress
	}

	return &response_models.Accommodation{
		Name:     best.Name,
		Details:  fmt.Sprintf("A well-rated hotel with a rating of %s/5. Located at: %s", ratingText, address),
		Price:    FormatPriceLabel(best.PriceLevel),
		Location: best.Location,
	}, nil
}

func (s *AccommodationService) nearbyLodging(ctx context.Context, location response_models.Coordinates, minPrice, maxPrice int) ([]infra.Place, error) {
	results, err := s.places.NearbySearch(ctx, infra.NearbySearchRequest{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		RadiusM:   lodgingSearchRadiusM,
		PlaceType: "lodging",
		MinPrice:  &minPrice,
		MaxPrice:  &maxPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("nearby lodging search: %w", err)
	}
	return results, nil
}

func pickBestRated(places []infra.Place) infra.Place {
	best := places[0]
	bestRating := ratingOrZero(best.Rating)
	for _, p := range places[1:] {
		if r := ratingOrZero(p.Rating); r > bestRating {
			best = p
			bestRating = r
		}
	}
	return best
}

func ratingOrZero(rating *float64) float64 {
	if rating == nil {
		return 0
	}
	return *rating
}
