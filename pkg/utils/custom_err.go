package utils

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid or empty input")
	ErrLocationNotFound      = errors.New("location not found")
	ErrAccommodationNotFound = errors.New("no accommodation found")
	ErrAgentContract         = errors.New("agent response violates its contract")
	ErrGeneration            = errors.New("generation provider error")
	ErrAmadeusAuth           = errors.New("amadeus authentication failed")
	ErrFlightNotSelected     = errors.New("no flight selected on itinerary")
)
