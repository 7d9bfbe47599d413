package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	"odyssey/internal/models/request_models"
	"odyssey/internal/models/response_models"
	"odyssey/pkg/utils"
)

// ItineraryDraftContent is everything the comprehensive itinerary agent
// produces in its single consolidated call.
type ItineraryDraftContent struct {
	TripTitle             string                             `json:"tripTitle"`
	DailyPlans            []response_models.DailyPlan        `json:"dailyPlans"`
	PackingList           response_models.PackingList        `json:"packingList"`
	AuthenticExperiences  []response_models.Experience       `json:"authenticExperiences"`
	UnexpectedDiscoveries []response_models.Experience       `json:"unexpectedDiscoveries"`
	ContingencyPlans      []response_models.ContingencyPlan  `json:"contingencyPlans"`
	LanguageGuide         response_models.LanguageGuide      `json:"languageGuide"`
}

type AgentServiceInterface interface {
	ResolveIATACode(ctx context.Context, locationName string) (string, error)
	GenerateItineraryDraft(ctx context.Context, prefs request_models.UserPreferences, duration int, accommodation response_models.Accommodation, potentialActivities []response_models.Activity, weatherForecast string) (*ItineraryDraftContent, error)
	GenerateBookingInfo(ctx context.Context, itemType, itemName string, itemDetails interface{}) (*response_models.BookingInfo, error)
}

type AgentService struct {
	ai     utils.StructuredClientInterface
	logger *zap.Logger
}

func NewAgentService(ai utils.StructuredClientInterface, logger *zap.Logger) AgentServiceInterface {
	return &AgentService{
		ai:     ai,
		logger: logger,
	}
}

// ResolveIATACode asks the generation provider for the primary 3-letter
// airport code of a city. The schema constrains the shape but not the code
// length, so a post-check guards the contract.
func (a *AgentService) ResolveIATACode(ctx context.Context, locationName string) (string, error) {
	a.logger.Info("resolving IATA code", zap.String("location", locationName))

	prompt := fmt.Sprintf(`You are a travel data API. Your sole function is to identify the primary 3-letter IATA airport code for a major city or location.
For example, for "Paris, France" you would return "CDG". For "New York City" you would return "JFK". For "Kyoto, Japan", you might return "KIX" (Kansai International), as it's the main international gateway.

Location: %q

Return ONLY a JSON object with the single key "iataCode".`, locationName)

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"iataCode": {
				Type:        genai.TypeString,
				Description: "The 3-letter IATA airport code.",
			},
		},
		Required: []string{"iataCode"},
	}

	raw, err := a.ai.GenerateStructuredJSON(ctx, prompt, schema)
	if err != nil {
		return "", err
	}

	var result struct {
		IATACode string `json:"iataCode"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("%w: cannot parse IATA agent response: %v", utils.ErrGeneration, err)
	}

	code := strings.ToUpper(strings.TrimSpace(result.IATACode))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: IATA agent returned %q for %s, expected a 3-letter code", utils.ErrAgentContract, result.IATACode, locationName)
	}

	return code, nil
}

// GenerateItineraryDraft runs the single consolidated itinerary call: daily
// plans, packing list, experiences, contingency plans and a language guide
// in one response, because separate calls per artifact run into provider
// rate limits.
func (a *AgentService) GenerateItineraryDraft(ctx context.Context, prefs request_models.UserPreferences, duration int, accommodation response_models.Accommodation, potentialActivities []response_models.Activity, weatherForecast string) (*ItineraryDraftContent, error) {
	a.logger.Info("generating itinerary draft",
		zap.String("destination", prefs.Destination),
		zap.Int("duration", duration),
		zap.Int("groundedActivities", len(potentialActivities)))

	activityListContext := "No specific activities were found nearby, so you must generate 2-3 plausible activities per day based on the user's interests."
	if len(potentialActivities) > 0 {
		activitiesJSON, err := json.MarshalIndent(potentialActivities, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal candidate activities: %w", err)
		}
		activityListContext = fmt.Sprintf("Please select from the following list of real-world activities found near the user's accommodation to build your plan: %s", activitiesJSON)
	}

	prompt := fmt.Sprintf(`You are an expert travel planner. Your task is to create a complete, detailed, and enjoyable %d-day itinerary for a trip to %s. You must also provide a packing list, suggest unique local experiences, create a title for the trip, devise contingency plans, and a language guide.

**User Context:**
- Destination: %s
- Trip Start Date: %s
- Budget: %s
- Travel Style: %s
- Interests: %s
- Pace: %s
- Travelers: %s
- Specific Needs: %s
- Accommodation: Staying at %s.
- Expected Weather: %s

**Your Required Tasks (in a single JSON response):**
1. **Generate a Trip Title:** Create a catchy, descriptive title for this entire journey.
2. **Create Daily Plans:**
   - Structure the trip into exactly %d days, numbered 1 through %d with no gaps.
   - For each day, assign a creative theme.
   - Select or generate 2-3 activities per day that match the user's interests and are logically sequenced.
   - For each day, suggest one thematically appropriate restaurant for breakfast, lunch, and dinner, considering the day's activities and user budget. Provide a name, a brief description, and a price range ("$", "$$", "$$$").
3. **Packing List:** Generate a helpful packing list based on the destination, duration, the expected weather, and the planned daily activities. You MUST structure this into logical categories using these exact keys in the JSON: "documentsAndEssentials", "clothing", "toiletries", and "electronics". Tailor the clothing suggestions specifically to the activities and weather.
4. **Suggest Authentic Experiences:** Suggest exactly 2 unique, off-the-beaten-path local experiences a typical tourist might miss, tailored to user interests. Provide a short, compelling title and a description for each.
5. **Suggest Unexpected Discoveries:** Suggest exactly 2 serendipitous or seasonal activities (e.g., local festivals, special exhibits, natural phenomena) available around the trip's start date. Provide a short, intriguing title and a description for each.
6. **Generate Contingency Plans:** Suggest exactly 2 plausible contingency plans for potential issues on this trip (e.g., 'Heavy Rainfall', 'Flight Delays from Origin'). For each, provide a short "risk" title and a "plan" of action.
7. **Create a Language Guide:** Generate a brief language guide for the primary local language spoken at the destination. Provide the "languageName" and a few essential phrases (e.g., Hello, Thank you, How much is this?, Excuse me/Sorry, Yes, No). For each phrase, include the "english" version, the "translation", and a simple "phonetic" pronunciation.

**Available Activities for Planning:**
%s

Respond with a single JSON object that strictly adheres to the provided schema. Do not add any commentary.`,
		duration, prefs.Destination,
		prefs.Destination, prefs.StartDate, prefs.Budget,
		strings.Join(prefs.TravelStyle, ", "),
		strings.Join(prefs.Interests, ", "), prefs.Pace, prefs.Travelers,
		prefs.SpecificNeeds,
		accommodation.Name, weatherForecast,
		duration, duration,
		activityListContext)

	raw, err := a.ai.GenerateStructuredJSON(ctx, prompt, itineraryDraftSchema())
	if err != nil {
		return nil, err
	}

	var draft ItineraryDraftContent
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("%w: cannot parse itinerary draft: %v", utils.ErrGeneration, err)
	}

	return &draft, nil
}

// GenerateBookingInfo produces a synthetic confirmation for one bookable
// item. Purely illustrative; no real reservation is made.
func (a *AgentService) GenerateBookingInfo(ctx context.Context, itemType, itemName string, itemDetails interface{}) (*response_models.BookingInfo, error) {
	a.logger.Info("generating booking confirmation",
		zap.String("type", itemType),
		zap.String("name", itemName))

	detailsJSON, err := json.MarshalIndent(itemDetails, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal booking item details: %w", err)
	}

	prompt := fmt.Sprintf(`You are a travel booking confirmation API. Your job is to create a realistic-looking (but fake) booking confirmation for a travel item.

**Booking Item Details:**
- Item Type: %s
- Name/Identifier: %s
- Full Details: %s

**Your Task:**
Generate a JSON object with the following information:
1. "confirmationCode": A plausible alphanumeric confirmation code (e.g., "AZ8-T4K").
2. "bookingLink": A plausible but fake booking management URL (e.g., "https://book.fakedestination.com/manage/AZ8-T4K").
3. "notes": A concise, helpful note relevant to the booking type. For a flight, mention checking in online. For a hotel, mention check-in time. For an activity, mention bringing the ticket.

Respond ONLY with the JSON object. Do not add any other commentary.`, itemType, itemName, detailsJSON)

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"confirmationCode": {Type: genai.TypeString, Description: "A fake alphanumeric confirmation code."},
			"bookingLink":      {Type: genai.TypeString, Description: "A fake URL to manage the booking."},
			"notes":            {Type: genai.TypeString, Description: "A short, helpful note for the traveler."},
		},
		Required: []string{"confirmationCode", "bookingLink", "notes"},
	}

	raw, err := a.ai.GenerateStructuredJSON(ctx, prompt, schema)
	if err != nil {
		return nil, err
	}

	var info response_models.BookingInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("%w: cannot parse booking confirmation: %v", utils.ErrGeneration, err)
	}

	return &info, nil
}

func itineraryDraftSchema() *genai.Schema {
	suggestionSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"priceRange":  {Type: genai.TypeString},
		},
		Required: []string{"name", "description", "priceRange"},
	}

	experienceSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
		},
		Required: []string{"title", "description"},
	}

	activitySchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"description": {Type: genai.TypeString},
			"location": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"latitude":  {Type: genai.TypeNumber},
					"longitude": {Type: genai.TypeNumber},
				},
				Required: []string{"latitude", "longitude"},
			},
			"price": {Type: genai.TypeString},
		},
		Required: []string{"description", "location", "price"},
	}

	stringArray := &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tripTitle": {
				Type:        genai.TypeString,
				Description: "A catchy, descriptive title for the entire travel itinerary.",
			},
			"dailyPlans": {
				Type:        genai.TypeArray,
				Description: "The array of daily plans for the itinerary.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"day":        {Type: genai.TypeInteger},
						"theme":      {Type: genai.TypeString},
						"activities": {Type: genai.TypeArray, Items: activitySchema},
						"dining": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"breakfast": suggestionSchema,
								"lunch":     suggestionSchema,
								"dinner":    suggestionSchema,
							},
							Required: []string{"breakfast", "lunch", "dinner"},
						},
					},
					Required: []string{"day", "theme", "activities", "dining"},
				},
			},
			"packingList": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"documentsAndEssentials": stringArray,
					"clothing":               stringArray,
					"toiletries":             stringArray,
					"electronics":            stringArray,
				},
				Required: []string{"documentsAndEssentials", "clothing", "toiletries", "electronics"},
			},
			"authenticExperiences": {
				Type:        genai.TypeArray,
				Description: "An array of 2 unique, authentic local experiences.",
				Items:       experienceSchema,
			},
			"unexpectedDiscoveries": {
				Type:        genai.TypeArray,
				Description: "An array of 2 seasonal or serendipitous discoveries.",
				Items:       experienceSchema,
			},
			"contingencyPlans": {
				Type:        genai.TypeArray,
				Description: "An array of 2 contingency plans for trip risks.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"risk": {Type: genai.TypeString},
						"plan": {Type: genai.TypeString},
					},
					Required: []string{"risk", "plan"},
				},
			},
			"languageGuide": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"languageName": {Type: genai.TypeString},
					"phrases": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"english":     {Type: genai.TypeString},
								"translation": {Type: genai.TypeString},
								"phonetic":    {Type: genai.TypeString},
							},
							Required: []string{"english", "translation", "phonetic"},
						},
					},
				},
				Required: []string{"languageName", "phrases"},
			},
		},
		Required: []string{"tripTitle", "dailyPlans", "packingList", "authenticExperiences", "unexpectedDiscoveries", "contingencyPlans", "languageGuide"},
	}
}
