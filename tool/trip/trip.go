package trip

import (
	"context"

	"github.com/mitchellh/mapstructure"

	"github.com/wayfarer-ai/wayfarer/tool"
	"github.com/wayfarer-ai/wayfarer/utils/json"
)

// PlannerTool generates a day-by-day itinerary for a destination and
// date range, then annotates it with map-search links for every place
// the itinerary mentions.
type PlannerTool struct {
	generator *Generator
}

var _ tool.Tool = &PlannerTool{}

// NewPlannerTool creates a new trip planner tool.
func NewPlannerTool(opts ...Option) (*PlannerTool, error) {
	generator, err := NewGenerator(opts...)
	if err != nil {
		return nil, err
	}
	return &PlannerTool{generator: generator}, nil
}

// Name returns the name of the tool.
func (t *PlannerTool) Name() string {
	return "TripPlanner"
}

// Description returns the description of the tool.
func (t *PlannerTool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Plan a multi-day trip to a destination.
Produces a day-by-day itinerary with meals and activities, followed by map links for every mentioned place.
Input must be json schema: ` + string(bytes) + `
Example Input: {"destination": "japan", "start_date": "2024-05-01", "end_date": "2024-05-03", "interests": ["food"], "companions": ["Ada"]}`
}

func (t *PlannerTool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"destination": {
				Type:        tool.TypeString,
				Description: "Where the trip goes, a region name or a city",
			},
			"start_date": {
				Type:        tool.TypeString,
				Description: "First day of the trip, e.g. 2024-05-01",
			},
			"end_date": {
				Type:        tool.TypeString,
				Description: "Day the trip ends (exclusive), e.g. 2024-05-03",
			},
			"interests": {
				Type:        tool.TypeArr,
				Description: "Optional interest tags to note on the itinerary",
				Items:       &tool.PropertySchema{Type: tool.TypeString},
			},
			"companions": {
				Type:        tool.TypeArr,
				Description: "Optional names of travel companions",
				Items:       &tool.PropertySchema{Type: tool.TypeString},
			},
		},
		Required: []string{"destination", "start_date", "end_date"},
	}
}

func (t *PlannerTool) Strict() bool {
	return true
}

// Call generates the itinerary and appends the extracted map links.
func (t *PlannerTool) Call(_ context.Context, input string) (string, error) {
	var params map[string]interface{}
	if err := json.Unmarshal([]byte(json.TrimJsonString(input)), &params); err != nil {
		return "json unmarshal error, please try again", nil
	}

	var req TripRequest
	if err := mapstructure.Decode(params, &req); err != nil {
		return "invalid input, please check the schema and try again", nil
	}
	if req.Destination == "" {
		return "destination parameter is required", nil
	}

	itinerary := t.generator.Generate(req)
	links := ExtractMapLinks(itinerary, req.Destination)
	return itinerary + "\n\n" + links, nil
}

// MapLinksTool extracts place names from itinerary text and builds one
// map-search link per place. The text does not need to come from
// PlannerTool; any itinerary using the "**Day <n> — <city>**" heading
// format works.
type MapLinksTool struct{}

var _ tool.Tool = &MapLinksTool{}

// NewMapLinksTool creates a new map-link extraction tool.
func NewMapLinksTool() *MapLinksTool {
	return &MapLinksTool{}
}

// Name returns the name of the tool.
func (t *MapLinksTool) Name() string {
	return "ItineraryMapLinks"
}

// Description returns the description of the tool.
func (t *MapLinksTool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Extract place names from an itinerary and build map search links.
Scans each day block for mentioned places and renders one Google Maps link per place.
Input must be json schema: ` + string(bytes) + `
Example Input: {"itinerary": "**Day 1 — Tokyo**\n- 08:00 — Breakfast at Riverside Bakery", "destination": "japan"}`
}

func (t *MapLinksTool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"itinerary": {
				Type:        tool.TypeString,
				Description: "Itinerary text with **Day <n>** headings",
			},
			"destination": {
				Type:        tool.TypeString,
				Description: "Optional fallback context for days without a recognizable city",
			},
		},
		Required: []string{"itinerary"},
	}
}

func (t *MapLinksTool) Strict() bool {
	return true
}

// Call extracts map links from the supplied itinerary text.
func (t *MapLinksTool) Call(_ context.Context, input string) (string, error) {
	var params map[string]interface{}
	if err := json.Unmarshal([]byte(json.TrimJsonString(input)), &params); err != nil {
		return "json unmarshal error, please try again", nil
	}

	itinerary, ok := params["itinerary"].(string)
	if !ok || itinerary == "" {
		return "itinerary parameter is required", nil
	}
	destination, _ := params["destination"].(string)

	return ExtractMapLinks(itinerary, destination), nil
}
