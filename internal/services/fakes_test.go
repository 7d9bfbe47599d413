package services

import (
	"context"
	"fmt"
	"sync"

	"odyssey/internal/infra"
	"odyssey/internal/models/request_models"
	"odyssey/internal/models/response_models"
)

// fakePlacesClient returns canned results per method and records the nearby
// requests it received so tests can assert on radii and price filters.
type fakePlacesClient struct {
	findResults   []infra.Place
	findErr       error
	nearbyResults [][]infra.Place
	nearbyErr     error
	textResults   []infra.Place
	textErr       error

	// location resolution runs fanned out, so call records are guarded
	mu             sync.Mutex
	findQueries    []string
	nearbyRequests []infra.NearbySearchRequest
	textQueries    []string
}

func (f *fakePlacesClient) FindPlaceFromText(ctx context.Context, query string) ([]infra.Place, error) {
	f.mu.Lock()
	f.findQueries = append(f.findQueries, query)
	f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findResults, nil
}

func (f *fakePlacesClient) NearbySearch(ctx context.Context, req infra.NearbySearchRequest) ([]infra.Place, error) {
	f.mu.Lock()
	f.nearbyRequests = append(f.nearbyRequests, req)
	call := len(f.nearbyRequests) - 1
	f.mu.Unlock()
	if f.nearbyErr != nil {
		return nil, f.nearbyErr
	}
	if call < len(f.nearbyResults) {
		return f.nearbyResults[call], nil
	}
	return nil, nil
}

func (f *fakePlacesClient) TextSearch(ctx context.Context, query, placeType string) ([]infra.Place, error) {
	f.mu.Lock()
	f.textQueries = append(f.textQueries, query)
	f.mu.Unlock()
	if f.textErr != nil {
		return nil, f.textErr
	}
	return f.textResults, nil
}

// fakeAmadeusClient answers direct and connecting searches separately and
// records every request.
type fakeAmadeusClient struct {
	directResponse     *infra.FlightOffersResponse
	connectingResponse *infra.FlightOffersResponse
	err                error

	requests []infra.FlightOffersRequest
}

func (f *fakeAmadeusClient) SearchFlightOffers(ctx context.Context, req infra.FlightOffersRequest) (*infra.FlightOffersResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	if req.NonStop {
		if f.directResponse != nil {
			return f.directResponse, nil
		}
		return &infra.FlightOffersResponse{}, nil
	}
	if f.connectingResponse != nil {
		return f.connectingResponse, nil
	}
	return &infra.FlightOffersResponse{}, nil
}

// fakeAgentService returns deterministic agent output. IATA codes are looked
// up per location; the itinerary draft echoes the requested duration and the
// grounded activities so orchestrator tests can check assembly.
type fakeAgentService struct {
	iataCodes  map[string]string
	iataErr    error
	draftErr   error
	bookingErr error

	// booking confirmations run fanned out, so call records are guarded
	mu          sync.Mutex
	iataCalls   []string
	draftCalls  int
	bookedItems []string
}

func (f *fakeAgentService) ResolveIATACode(ctx context.Context, locationName string) (string, error) {
	f.mu.Lock()
	f.iataCalls = append(f.iataCalls, locationName)
	f.mu.Unlock()
	if f.iataErr != nil {
		return "", f.iataErr
	}
	if code, ok := f.iataCodes[locationName]; ok {
		return code, nil
	}
	return "XXX", nil
}

func (f *fakeAgentService) GenerateItineraryDraft(ctx context.Context, prefs request_models.UserPreferences, duration int, accommodation response_models.Accommodation, potentialActivities []response_models.Activity, weatherForecast string) (*ItineraryDraftContent, error) {
	f.mu.Lock()
	f.draftCalls++
	f.mu.Unlock()
	if f.draftErr != nil {
		return nil, f.draftErr
	}

	plans := make([]response_models.DailyPlan, duration)
	for i := range plans {
		day := i + 1
		activities := make([]response_models.Activity, 0, 2)
		for j := 0; j < 2; j++ {
			idx := (i*2 + j) % max(len(potentialActivities), 1)
			if len(potentialActivities) > 0 {
				activities = append(activities, potentialActivities[idx])
			} else {
				activities = append(activities, response_models.Activity{
					Description: fmt.Sprintf("Generated activity %d for day %d", j+1, day),
					Price:       "Price varies",
				})
			}
		}
		plans[i] = response_models.DailyPlan{
			Day:        day,
			Theme:      fmt.Sprintf("Day %d theme", day),
			Activities: activities,
			Dining: response_models.DailyDiningOptions{
				Breakfast: response_models.DiningSuggestion{Name: "Morning Cafe", Description: "Local breakfast spot", PriceRange: "$"},
				Lunch:     response_models.DiningSuggestion{Name: "Midday Bistro", Description: "Casual lunch", PriceRange: "$$"},
				Dinner:    response_models.DiningSuggestion{Name: "Evening Table", Description: "Seasonal dinner menu", PriceRange: "$$"},
			},
		}
	}

	return &ItineraryDraftContent{
		TripTitle:  fmt.Sprintf("A %d-Day Journey Through %s", duration, prefs.Destination),
		DailyPlans: plans,
		PackingList: response_models.PackingList{
			DocumentsAndEssentials: []string{"Passport"},
			Clothing:               []string{"Walking shoes"},
			Toiletries:             []string{"Sunscreen"},
			Electronics:            []string{"Phone charger"},
		},
		AuthenticExperiences: []response_models.Experience{
			{Title: "Hidden tea house", Description: "A quiet spot locals favor"},
			{Title: "Morning market", Description: "Produce stalls before the crowds"},
		},
		UnexpectedDiscoveries: []response_models.Experience{
			{Title: "Seasonal festival", Description: "Held around the trip dates"},
			{Title: "Pop-up exhibit", Description: "A short-lived gallery show"},
		},
		ContingencyPlans: []response_models.ContingencyPlan{
			{Risk: "Heavy Rainfall", Plan: "Swap outdoor days for museums"},
			{Risk: "Flight Delays", Plan: "Keep the first day unscheduled"},
		},
		LanguageGuide: response_models.LanguageGuide{
			LanguageName: "Japanese",
			Phrases: []response_models.Phrase{
				{English: "Hello", Translation: "Konnichiwa", Phonetic: "kon-nee-chee-wah"},
			},
		},
	}, nil
}

func (f *fakeAgentService) GenerateBookingInfo(ctx context.Context, itemType, itemName string, itemDetails interface{}) (*response_models.BookingInfo, error) {
	f.mu.Lock()
	f.bookedItems = append(f.bookedItems, fmt.Sprintf("%s:%s", itemType, itemName))
	f.mu.Unlock()
	if f.bookingErr != nil {
		return nil, f.bookingErr
	}
	return &response_models.BookingInfo{
		ConfirmationCode: fmt.Sprintf("CONF-%s", itemName),
		BookingLink:      fmt.Sprintf("https://book.example.com/manage/%s", itemName),
		Notes:            "Bring your confirmation.",
	}, nil
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
