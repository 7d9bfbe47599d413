package request_models

import "odyssey/internal/models/response_models"

// ConfirmBookingRequest carries the draft itinerary back from the
// presentation layer together with the flight the user picked.
type ConfirmBookingRequest struct {
	Itinerary      response_models.Itinerary    `json:"itinerary"`
	SelectedFlight response_models.FlightOption `json:"selectedFlight"`
}
