package request_models

// UserPreferences is the form payload the presentation layer submits to start
// the planning workflow. Dates are calendar days in "2006-01-02" form;
// travelers is free text ("Solo", "Couple", "2 adults").
type UserPreferences struct {
	Departure     string   `json:"departure"`
	Destination   string   `json:"destination"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	Budget        string   `json:"budget"` // Budget | Moderate | Luxury
	Travelers     string   `json:"travelers"`
	TravelStyle   []string `json:"travelStyle"`
	Interests     []string `json:"interests"`
	Pace          string   `json:"pace"` // Relaxed | Balanced | Fast-paced
	SpecificNeeds string   `json:"specificNeeds"`
}
