package response_models

// BookingInfo is a simulated confirmation record. Nothing here corresponds
// to a real reservation system.
type BookingInfo struct {
	ConfirmationCode string `json:"confirmationCode"`
	BookingLink      string `json:"bookingLink"`
	Notes            string `json:"notes"`
}

type ActivityBooking struct {
	ActivityDescription string      `json:"activityDescription"`
	BookingInfo         BookingInfo `json:"bookingInfo"`
}

type BookingDetails struct {
	FlightBooking        BookingInfo       `json:"flightBooking"`
	AccommodationBooking BookingInfo       `json:"accommodationBooking"`
	ActivityBookings     []ActivityBooking `json:"activityBookings"`
}

// BookingConfirmation pairs the simulated confirmations with the finalized
// itinerary so the presentation layer gets both in one response.
type BookingConfirmation struct {
	BookingDetails BookingDetails `json:"bookingDetails"`
	FinalItinerary Itinerary      `json:"finalItinerary"`
}
