package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"odyssey/internal/infra"
	"odyssey/internal/models/response_models"
)

func TestFindNearbyActivities(t *testing.T) {
	coords := response_models.Coordinates{Latitude: 35.0116, Longitude: 135.7681}

	t.Run("maps results with price labels", func(t *testing.T) {
		places := &fakePlacesClient{
			nearbyResults: [][]infra.Place{{
				{Name: "Temple Walk", Rating: floatPtr(4.6), Location: coords},
				{Name: "Food Market Tour", PriceLevel: intPtr(2), Location: coords},
			}},
		}
		svc := NewActivityService(places, zap.NewNop())

		activities, err := svc.FindNearbyActivities(context.Background(), coords, []string{"history", "food"})
		require.NoError(t, err)
		require.Len(t, activities, 2)
		assert.Equal(t, "Temple Walk", activities[0].Description)
		assert.Equal(t, "Price varies", activities[0].Price)
		assert.Equal(t, "$$ - Moderately priced", activities[1].Price)

		require.Len(t, places.nearbyRequests, 1)
		req := places.nearbyRequests[0]
		assert.Equal(t, 10000, req.RadiusM)
		assert.Equal(t, "tourist_attraction", req.PlaceType)
		assert.Equal(t, "history food", req.Keyword)
		assert.Nil(t, req.MinPrice)
	})

	t.Run("caps results at ten", func(t *testing.T) {
		var many []infra.Place
		for i := 0; i < 14; i++ {
			many = append(many, infra.Place{Name: fmt.Sprintf("Attraction %d", i), Location: coords})
		}
		places := &fakePlacesClient{nearbyResults: [][]infra.Place{many}}
		svc := NewActivityService(places, zap.NewNop())

		activities, err := svc.FindNearbyActivities(context.Background(), coords, nil)
		require.NoError(t, err)
		assert.Len(t, activities, 10)
	})

	t.Run("zero results is an empty slice, not an error", func(t *testing.T) {
		svc := NewActivityService(&fakePlacesClient{}, zap.NewNop())

		activities, err := svc.FindNearbyActivities(context.Background(), coords, []string{"art"})
		require.NoError(t, err)
		assert.Empty(t, activities)
	})
}
