package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odyssey/internal/models/request_models"
	"odyssey/internal/models/response_models"
	"odyssey/pkg/utils"
)

type fakeOrchestrator struct {
	itinerary    *response_models.Itinerary
	flights      []response_models.FlightOption
	confirmation *response_models.BookingConfirmation
	err          error
}

func (f *fakeOrchestrator) PlanItinerary(ctx context.Context, prefs request_models.UserPreferences) (*response_models.Itinerary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.itinerary, nil
}

func (f *fakeOrchestrator) SearchFlightsForTrip(ctx context.Context, prefs request_models.UserPreferences) ([]response_models.FlightOption, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.flights, nil
}

func (f *fakeOrchestrator) ConfirmBooking(ctx context.Context, itinerary response_models.Itinerary, selectedFlight response_models.FlightOption) (*response_models.BookingConfirmation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.confirmation, nil
}

func setupRouter(orch *fakeOrchestrator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewPlannerController(orch)
	group := r.Group("/planner")
	group.POST("/preferences", controller.PlanItinerary)
	group.POST("/flights", controller.SearchFlights)
	group.POST("/booking/confirm", controller.ConfirmBooking)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlanItineraryEndpoint(t *testing.T) {
	t.Run("returns the draft on success", func(t *testing.T) {
		orch := &fakeOrchestrator{itinerary: &response_models.Itinerary{
			TripTitle:   "Kyoto in Bloom",
			Destination: "Kyoto, Japan",
		}}
		r := setupRouter(orch)

		w := postJSON(t, r, "/planner/preferences", request_models.UserPreferences{Destination: "Kyoto, Japan"})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp utils.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Kyoto in Bloom", data["tripTitle"])
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		r := setupRouter(&fakeOrchestrator{})

		req := httptest.NewRequest(http.MethodPost, "/planner/preferences", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown location maps to 404", func(t *testing.T) {
		r := setupRouter(&fakeOrchestrator{err: utils.ErrLocationNotFound})

		w := postJSON(t, r, "/planner/preferences", request_models.UserPreferences{Destination: "Atlantis"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("generation failure maps to 502", func(t *testing.T) {
		r := setupRouter(&fakeOrchestrator{err: utils.ErrGeneration})

		w := postJSON(t, r, "/planner/preferences", request_models.UserPreferences{Destination: "Kyoto"})
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestSearchFlightsEndpoint(t *testing.T) {
	orch := &fakeOrchestrator{flights: []response_models.FlightOption{
		{Airline: "All Nippon Airways", FlightNumber: "NH 106"},
	}}
	r := setupRouter(orch)

	w := postJSON(t, r, "/planner/flights", request_models.UserPreferences{Departure: "SFO", Destination: "Kyoto"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	flights, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, flights, 1)
}

func TestConfirmBookingEndpoint(t *testing.T) {
	t.Run("returns confirmation with final itinerary", func(t *testing.T) {
		orch := &fakeOrchestrator{confirmation: &response_models.BookingConfirmation{
			BookingDetails: response_models.BookingDetails{
				FlightBooking: response_models.BookingInfo{ConfirmationCode: "AZ8-T4K"},
			},
		}}
		r := setupRouter(orch)

		w := postJSON(t, r, "/planner/booking/confirm", request_models.ConfirmBookingRequest{
			Itinerary:      response_models.Itinerary{Destination: "Kyoto, Japan"},
			SelectedFlight: response_models.FlightOption{FlightNumber: "NH 106"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing flight maps to 409", func(t *testing.T) {
		r := setupRouter(&fakeOrchestrator{err: utils.ErrFlightNotSelected})

		w := postJSON(t, r, "/planner/booking/confirm", request_models.ConfirmBookingRequest{})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
