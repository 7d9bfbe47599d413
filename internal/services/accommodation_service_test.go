package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"odyssey/internal/infra"
	"odyssey/internal/models/request_models"
	"odyssey/internal/models/response_models"
	"odyssey/pkg/utils"
)

func TestFormatPriceLabel(t *testing.T) {
	assert.Equal(t, "Price varies", FormatPriceLabel(nil))
	assert.Equal(t, "$ - Budget-friendly", FormatPriceLabel(intPtr(0)))
	assert.Equal(t, "$ - Budget-friendly", FormatPriceLabel(intPtr(1)))
	assert.Equal(t, "$$ - Moderately priced", FormatPriceLabel(intPtr(2)))
	assert.Equal(t, "$$$ - Upscale", FormatPriceLabel(intPtr(3)))
	assert.Equal(t, "$$$ - Upscale", FormatPriceLabel(intPtr(4)))
}

func TestSearchAccommodation(t *testing.T) {
	coords := response_models.Coordinates{Latitude: 35.0116, Longitude: 135.7681}
	prefs := request_models.UserPreferences{Budget: "Moderate"}

	t.Run("picks the highest rated result", func(t *testing.T) {
		places := &fakePlacesClient{
			nearbyResults: [][]infra.Place{{
				{Name: "Decent Inn", Rating: floatPtr(3.9), PriceLevel: intPtr(2), Vicinity: "1 Low St", Location: coords},
				{Name: "Great Hotel", Rating: floatPtr(4.7), PriceLevel: intPtr(2), Vicinity: "2 High St", Location: coords},
				{Name: "Unrated Hostel", PriceLevel: intPtr(2), Vicinity: "3 Side St", Location: coords},
			}},
		}
		svc := NewAccommodationService(places, zap.NewNop())

		acc, err := svc.SearchAccommodation(context.Background(), "Kyoto, Japan", coords, prefs)
		require.NoError(t, err)
		assert.Equal(t, "Great Hotel", acc.Name)
		assert.Equal(t, "$$ - Moderately priced", acc.Price)
		assert.Equal(t, "A well-rated hotel with a rating of 4.7/5. Located at: 2 High St", acc.Details)

		require.Len(t, places.nearbyRequests, 1)
		req := places.nearbyRequests[0]
		assert.Equal(t, 20000, req.RadiusM)
		assert.Equal(t, "lodging", req.PlaceType)
		assert.Equal(t, 2, *req.MinPrice)
		assert.Equal(t, 2, *req.MaxPrice)
	})

	t.Run("relaxes price range when budget tier is empty", func(t *testing.T) {
		places := &fakePlacesClient{
			nearbyResults: [][]infra.Place{
				nil,
				{{Name: "Only Option", Rating: floatPtr(4.0), Vicinity: "5 Any St", Location: coords}},
			},
		}
		svc := NewAccommodationService(places, zap.NewNop())

		acc, err := svc.SearchAccommodation(context.Background(), "Kyoto, Japan", coords, request_models.UserPreferences{Budget: "Luxury"})
		require.NoError(t, err)
		assert.Equal(t, "Only Option", acc.Name)
		assert.Equal(t, "Price varies", acc.Price)

		require.Len(t, places.nearbyRequests, 2)
		assert.Equal(t, 3, *places.nearbyRequests[0].MinPrice)
		assert.Equal(t, 4, *places.nearbyRequests[0].MaxPrice)
		assert.Equal(t, 0, *places.nearbyRequests[1].MinPrice)
		assert.Equal(t, 4, *places.nearbyRequests[1].MaxPrice)
	})

	t.Run("falls back to text search last", func(t *testing.T) {
		places := &fakePlacesClient{
			textResults: []infra.Place{
				{Name: "Remote Ryokan", Rating: floatPtr(4.2), FormattedAddress: "Far Valley 12", Location: coords},
			},
		}
		svc := NewAccommodationService(places, zap.NewNop())

		acc, err := svc.SearchAccommodation(context.Background(), "Remote Valley", coords, prefs)
		require.NoError(t, err)
		assert.Equal(t, "Remote Ryokan", acc.Name)
		// formatted address fills in when vicinity is absent
		assert.Contains(t, acc.Details, "Far Valley 12")

		assert.Len(t, places.nearbyRequests, 2)
		assert.Equal(t, []string{"lodging in Remote Valley"}, places.textQueries)
	})

	t.Run("all attempts empty means not found", func(t *testing.T) {
		svc := NewAccommodationService(&fakePlacesClient{}, zap.NewNop())

		_, err := svc.SearchAccommodation(context.Background(), "Nowhere", coords, prefs)
		assert.ErrorIs(t, err, utils.ErrAccommodationNotFound)
	})
}
