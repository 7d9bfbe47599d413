package response_models

// Coordinates is a latitude/longitude pair as returned by the place provider.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationData is a resolved place: its IATA airport code plus coordinates.
type LocationData struct {
	IATA      string  `json:"iata"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Accommodation struct {
	Name     string      `json:"name"`
	Details  string      `json:"details"`
	Price    string      `json:"price"`
	Location Coordinates `json:"location"`
}

type Activity struct {
	Description string      `json:"description"`
	Location    Coordinates `json:"location"`
	Price       string      `json:"price"`
}

type DiningSuggestion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceRange  string `json:"priceRange"` // "$", "$$" or "$$$"
}

type DailyDiningOptions struct {
	Breakfast DiningSuggestion `json:"breakfast"`
	Lunch     DiningSuggestion `json:"lunch"`
	Dinner    DiningSuggestion `json:"dinner"`
}

type DailyPlan struct {
	Day        int                `json:"day"`
	Theme      string             `json:"theme"`
	Activities []Activity         `json:"activities"`
	Dining     DailyDiningOptions `json:"dining"`
}

// PackingList uses the canonical category set; every category is always
// present in agent output.
type PackingList struct {
	DocumentsAndEssentials []string `json:"documentsAndEssentials"`
	Clothing               []string `json:"clothing"`
	Toiletries             []string `json:"toiletries"`
	Electronics            []string `json:"electronics"`
}

// Experience covers both authentic experiences and unexpected discoveries.
type Experience struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ContingencyPlan struct {
	Risk string `json:"risk"`
	Plan string `json:"plan"`
}

type Phrase struct {
	English     string `json:"english"`
	Translation string `json:"translation"`
	Phonetic    string `json:"phonetic"`
}

type LanguageGuide struct {
	LanguageName string   `json:"languageName"`
	Phrases      []Phrase `json:"phrases"`
}

// Itinerary is the aggregate the workflows produce. A draft has no flight;
// merging a chosen flight always constructs a new value rather than mutating
// the draft.
type Itinerary struct {
	TripTitle             string            `json:"tripTitle,omitempty"`
	Destination           string            `json:"destination"`
	DepartureIATA         string            `json:"departureIata,omitempty"`
	DestinationIATA       string            `json:"destinationIata,omitempty"`
	Flight                *FlightOption     `json:"flight,omitempty"`
	Accommodation         Accommodation     `json:"accommodation"`
	DailyPlans            []DailyPlan       `json:"dailyPlans"`
	PackingList           PackingList       `json:"packingList"`
	AuthenticExperiences  []Experience      `json:"authenticExperiences"`
	UnexpectedDiscoveries []Experience      `json:"unexpectedDiscoveries"`
	ContingencyPlans      []ContingencyPlan `json:"contingencyPlans,omitempty"`
	LanguageGuide         *LanguageGuide    `json:"languageGuide,omitempty"`
}

// WithFlight derives the finalized itinerary from a draft and a chosen
// flight option.
func (i Itinerary) WithFlight(flight FlightOption) Itinerary {
	final := i
	final.Flight = &flight
	return final
}
