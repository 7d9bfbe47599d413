package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"odyssey/internal/infra"
	"odyssey/internal/models/response_models"
	"odyssey/pkg/utils"
)

const maxFlightOffers = 5

type FlightServiceInterface interface {
	SearchFlights(ctx context.Context, departureCode, destinationCode, startDate, travelers string) ([]response_models.FlightOption, error)
}

type FlightService struct {
	amadeus infra.AmadeusClientInterface
	logger  *zap.Logger
}

func NewFlightService(amadeus infra.AmadeusClientInterface, logger *zap.Logger) FlightServiceInterface {
	return &FlightService{
		amadeus: amadeus,
		logger:  logger,
	}
}

// SearchFlights looks for direct flights first; if the route has none it
// broadens the same search to connecting flights. An empty result from both
// attempts is a valid outcome, not an error — only transport/auth failures
// raise. Offers keep the provider's ordering, capped at 5 per attempt.
func (s *FlightService) SearchFlights(ctx context.Context, departureCode, destinationCode, startDate, travelers string) ([]response_models.FlightOption, error) {
	adults := utils.ParseTravelerCount(travelers)

	s.logger.Info("searching flights",
		zap.String("origin", departureCode),
		zap.String("destination", destinationCode),
		zap.String("date", startDate),
		zap.Int("adults", adults))

	flights, err := s.performSearch(ctx, departureCode, destinationCode, startDate, adults, true)
	if err != nil {
		return nil, err
	}

	if len(flights) == 0 {
		s.logger.Info("no direct flights found, searching for connecting flights")
		flights, err = s.performSearch(ctx, departureCode, destinationCode, startDate, adults, false)
		if err != nil {
			return nil, err
		}
	}

	if len(flights) == 0 {
		s.logger.Info("no flights found at all for route",
			zap.String("origin", departureCode),
			zap.String("destination", destinationCode))
	}

	return flights, nil
}

func (s *FlightService) performSearch(ctx context.Context, origin, destination, date string, adults int, nonStop bool) ([]response_models.FlightOption, error) {
	resp, err := s.amadeus.SearchFlightOffers(ctx, infra.FlightOffersRequest{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: date,
		Adults:        adults,
		NonStop:       nonStop,
		MaxOffers:     maxFlightOffers,
	})
	if err != nil {
		return nil, err
	}

	flights := make([]response_models.FlightOption, 0, len(resp.Data))
	for _, offer := range resp.Data {
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		itinerary := offer.Itineraries[0]
		first := itinerary.Segments[0]
		last := itinerary.Segments[len(itinerary.Segments)-1]

		airline := resp.Dictionaries.Carriers[first.CarrierCode]
		if airline == "" {
			airline = first.CarrierCode
		}

		flights = append(flights, response_models.FlightOption{
			Airline:       airline,
			FlightNumber:  fmt.Sprintf("%s %s", first.CarrierCode, first.Number),
			DepartureTime: first.Departure.At,
			ArrivalTime:   last.Arrival.At,
			Price:         fmt.Sprintf("$%s", offer.Price.Total),
			Stops:         len(itinerary.Segments) - 1,
			Duration:      utils.FormatISODuration(itinerary.Duration),
		})
	}
	return flights, nil
}
