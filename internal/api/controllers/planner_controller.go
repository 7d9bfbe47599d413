package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"odyssey/internal/models/request_models"
	"odyssey/internal/services"
	"odyssey/pkg/utils"
)

type PlannerController struct {
	orchestrator services.OrchestratorServiceInterface
}

func NewPlannerController(orchestrator services.OrchestratorServiceInterface) *PlannerController {
	return &PlannerController{
		orchestrator: orchestrator,
	}
}

// PlanItinerary godoc
// @Summary Generate a travel itinerary draft
// @Description Build a grounded, flightless itinerary from the user's trip preferences
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.UserPreferences true "Trip preferences payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/preferences [post]
func (p *PlannerController) PlanItinerary(c *gin.Context) {
	var prefs request_models.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := p.orchestrator.PlanItinerary(c.Request.Context(), prefs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary draft generated")
}

// SearchFlights godoc
// @Summary Search flight options for a trip
// @Description Resolve both endpoints to airports and return matching flight offers
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.UserPreferences true "Trip preferences payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/flights [post]
func (p *PlannerController) SearchFlights(c *gin.Context) {
	var prefs request_models.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	flights, err := p.orchestrator.SearchFlightsForTrip(c.Request.Context(), prefs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, flights, "Flight options retrieved")
}

// ConfirmBooking godoc
// @Summary Confirm bookings for a finalized itinerary
// @Description Merge the selected flight into the itinerary and confirm all bookable items
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.ConfirmBookingRequest true "Itinerary and selected flight"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /planner/booking/confirm [post]
func (p *PlannerController) ConfirmBooking(c *gin.Context) {
	var req request_models.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	confirmation, err := p.orchestrator.ConfirmBooking(c.Request.Context(), req.Itinerary, req.SelectedFlight)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, confirmation, "Bookings confirmed")
}
