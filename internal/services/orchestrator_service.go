package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"odyssey/internal/models/request_models"
	"odyssey/internal/models/response_models"
	"odyssey/pkg/utils"
)

// maxActivityBookings caps the booking fan-out so one confirmation request
// does not fire a generation call per activity of a long trip.
const maxActivityBookings = 3

type OrchestratorServiceInterface interface {
	PlanItinerary(ctx context.Context, prefs request_models.UserPreferences) (*response_models.Itinerary, error)
	SearchFlightsForTrip(ctx context.Context, prefs request_models.UserPreferences) ([]response_models.FlightOption, error)
	ConfirmBooking(ctx context.Context, itinerary response_models.Itinerary, selectedFlight response_models.FlightOption) (*response_models.BookingConfirmation, error)
}

type OrchestratorService struct {
	locations      LocationServiceInterface
	accommodations AccommodationServiceInterface
	activities     ActivityServiceInterface
	flights        FlightServiceInterface
	weather        WeatherServiceInterface
	agents         AgentServiceInterface
	logger         *zap.Logger
}

func NewOrchestratorService(
	locations LocationServiceInterface,
	accommodations AccommodationServiceInterface,
	activities ActivityServiceInterface,
	flights FlightServiceInterface,
	weather WeatherServiceInterface,
	agents AgentServiceInterface,
	logger *zap.Logger,
) OrchestratorServiceInterface {
	return &OrchestratorService{
		locations:      locations,
		accommodations: accommodations,
		activities:     activities,
		flights:        flights,
		weather:        weather,
		agents:         agents,
		logger:         logger,
	}
}

// PlanItinerary runs the draft workflow: ground the trip in real places,
// then hand the grounded context to the itinerary agent. The returned draft
// carries no flight.
func (o *OrchestratorService) PlanItinerary(ctx context.Context, prefs request_models.UserPreferences) (*response_models.Itinerary, error) {
	o.logger.Info("planning itinerary",
		zap.String("departure", prefs.Departure),
		zap.String("destination", prefs.Destination))

	duration := utils.TripDurationInDays(prefs.StartDate, prefs.EndDate)
	if duration <= 0 {
		return nil, fmt.Errorf("%w: trip dates %q to %q", utils.ErrInvalidInput, prefs.StartDate, prefs.EndDate)
	}

	g, gctx := errgroup.WithContext(ctx)

	var departureLoc, destinationLoc *response_models.LocationData
	var weatherForecast string

	g.Go(func() error {
		loc, err := o.locations.ResolveLocation(gctx, prefs.Departure)
		if err != nil {
			return fmt.Errorf("resolve departure: %w", err)
		}
		departureLoc = loc
		return nil
	})
	g.Go(func() error {
		loc, err := o.locations.ResolveLocation(gctx, prefs.Destination)
		if err != nil {
			return fmt.Errorf("resolve destination: %w", err)
		}
		destinationLoc = loc
		return nil
	})
	g.Go(func() error {
		weatherForecast = o.weather.GetForecast(prefs.Destination, prefs.StartDate)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	destinationCoords := response_models.Coordinates{
		Latitude:  destinationLoc.Latitude,
		Longitude: destinationLoc.Longitude,
	}
	accommodation, err := o.accommodations.SearchAccommodation(ctx, prefs.Destination, destinationCoords, prefs)
	if err != nil {
		return nil, fmt.Errorf("search accommodation: %w", err)
	}

	potentialActivities, err := o.activities.FindNearbyActivities(ctx, accommodation.Location, prefs.Interests)
	if err != nil {
		return nil, fmt.Errorf("find activities: %w", err)
	}

	o.logger.Info("grounding complete",
		zap.String("accommodation", accommodation.Name),
		zap.Int("candidateActivities", len(potentialActivities)))

	draft, err := o.agents.GenerateItineraryDraft(ctx, prefs, duration, *accommodation, potentialActivities, weatherForecast)
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	itinerary := &response_models.Itinerary{
		TripTitle:             draft.TripTitle,
		Destination:           prefs.Destination,
		DepartureIATA:         departureLoc.IATA,
		DestinationIATA:       destinationLoc.IATA,
		Accommodation:         *accommodation,
		DailyPlans:            draft.DailyPlans,
		PackingList:           draft.PackingList,
		AuthenticExperiences:  draft.AuthenticExperiences,
		UnexpectedDiscoveries: draft.UnexpectedDiscoveries,
		ContingencyPlans:      draft.ContingencyPlans,
		LanguageGuide:         &draft.LanguageGuide,
	}

	o.logger.Info("itinerary draft ready",
		zap.String("tripTitle", itinerary.TripTitle),
		zap.Int("days", len(itinerary.DailyPlans)))

	return itinerary, nil
}

// SearchFlightsForTrip resolves both endpoints to airport codes and queries
// flight offers between them.
func (o *OrchestratorService) SearchFlightsForTrip(ctx context.Context, prefs request_models.UserPreferences) ([]response_models.FlightOption, error) {
	o.logger.Info("searching flights for trip",
		zap.String("departure", prefs.Departure),
		zap.String("destination", prefs.Destination))

	g, gctx := errgroup.WithContext(ctx)

	var departureLoc, destinationLoc *response_models.LocationData
	g.Go(func() error {
		loc, err := o.locations.ResolveLocation(gctx, prefs.Departure)
		if err != nil {
			return fmt.Errorf("resolve departure: %w", err)
		}
		departureLoc = loc
		return nil
	})
	g.Go(func() error {
		loc, err := o.locations.ResolveLocation(gctx, prefs.Destination)
		if err != nil {
			return fmt.Errorf("resolve destination: %w", err)
		}
		destinationLoc = loc
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return o.flights.SearchFlights(ctx, departureLoc.IATA, destinationLoc.IATA, prefs.StartDate, prefs.Travelers)
}

// ConfirmBooking fans out booking confirmations for the flight, the
// accommodation and the first activities of the trip. The precondition on
// the selected flight is checked before any external call.
func (o *OrchestratorService) ConfirmBooking(ctx context.Context, itinerary response_models.Itinerary, selectedFlight response_models.FlightOption) (*response_models.BookingConfirmation, error) {
	if selectedFlight.Airline == "" && selectedFlight.FlightNumber == "" {
		return nil, fmt.Errorf("%w: select a flight before confirming", utils.ErrFlightNotSelected)
	}

	final := itinerary.WithFlight(selectedFlight)

	o.logger.Info("confirming bookings",
		zap.String("flight", selectedFlight.FlightNumber),
		zap.String("accommodation", final.Accommodation.Name))

	bookable := make([]response_models.Activity, 0, maxActivityBookings)
	for _, plan := range final.DailyPlans {
		for _, activity := range plan.Activities {
			if len(bookable) == maxActivityBookings {
				break
			}
			bookable = append(bookable, activity)
		}
		if len(bookable) == maxActivityBookings {
			break
		}
	}

	details := &response_models.BookingDetails{
		ActivityBookings: make([]response_models.ActivityBooking, len(bookable)),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		info, err := o.agents.GenerateBookingInfo(gctx, "Flight", selectedFlight.Airline, selectedFlight)
		if err != nil {
			return fmt.Errorf("book flight: %w", err)
		}
		details.FlightBooking = *info
		return nil
	})
	g.Go(func() error {
		info, err := o.agents.GenerateBookingInfo(gctx, "Accommodation", final.Accommodation.Name, final.Accommodation)
		if err != nil {
			return fmt.Errorf("book accommodation: %w", err)
		}
		details.AccommodationBooking = *info
		return nil
	})
	for i, activity := range bookable {
		g.Go(func() error {
			info, err := o.agents.GenerateBookingInfo(gctx, "Activity", activity.Description, activity)
			if err != nil {
				return fmt.Errorf("book activity %q: %w", activity.Description, err)
			}
			details.ActivityBookings[i] = response_models.ActivityBooking{
				ActivityDescription: activity.Description,
				BookingInfo:         *info,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	o.logger.Info("bookings confirmed",
		zap.String("flightConfirmation", details.FlightBooking.ConfirmationCode),
		zap.Int("activityBookings", len(details.ActivityBookings)))

	return &response_models.BookingConfirmation{
		BookingDetails: *details,
		FinalItinerary: final,
	}, nil
}
