package trip

// TripRequest is a request for a generated itinerary. StartDate and
// EndDate are free-form date strings; ranges that fail to parse yield the
// minimum one-day trip rather than an error.
type TripRequest struct {
	Destination string   `json:"destination" mapstructure:"destination"`
	StartDate   string   `json:"start_date" mapstructure:"start_date"`
	EndDate     string   `json:"end_date" mapstructure:"end_date"`
	Interests   []string `json:"interests,omitempty" mapstructure:"interests"`
	Companions  []string `json:"companions,omitempty" mapstructure:"companions"`
}

// DayPlan is one resolved itinerary day. Index is 1-based.
type DayPlan struct {
	Index     int    `json:"index"`
	City      string `json:"city"`
	Breakfast string `json:"breakfast"`
	Morning   string `json:"morning"`
	Lunch     string `json:"lunch"`
	Afternoon string `json:"afternoon"`
	Dinner    string `json:"dinner"`
}

// PlaceRef is a place name recovered from itinerary text together with
// the geographic context used to disambiguate it.
type PlaceRef struct {
	Place   string `json:"place"`
	Context string `json:"context"`
}

// ExtractedDay is the set of places recovered from one day block.
type ExtractedDay struct {
	Title  string     `json:"title"`
	Places []PlaceRef `json:"places"`
}

// MapLink is a map-search link for a single extracted place.
type MapLink struct {
	Place   string `json:"place"`
	Context string `json:"context"`
	URL     string `json:"url"`
}
