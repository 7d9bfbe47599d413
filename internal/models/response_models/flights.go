package response_models

// FlightOption is a single offer from the flight provider. Timestamps are
// ISO 8601 as returned by the provider; Duration is already formatted for
// display ("5h 30m").
type FlightOption struct {
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flightNumber"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Price         string `json:"price"`
	Stops         int    `json:"stops"`
	Duration      string `json:"duration"`
}
