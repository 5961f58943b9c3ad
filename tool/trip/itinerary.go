package trip

import (
	"fmt"
	"math"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/thoas/go-funk"
)

// Each slot picks pool[(day*step+offset) mod len(pool)], so adjacent days
// vary without randomness and identical input reproduces identical output.
type slotRotation struct {
	step   int
	offset int
}

var (
	breakfastRotation = slotRotation{step: 3, offset: 0}
	lunchRotation     = slotRotation{step: 3, offset: 1}
	dinnerRotation    = slotRotation{step: 3, offset: 2}
	morningRotation   = slotRotation{step: 4, offset: 0}
	afternoonRotation = slotRotation{step: 2, offset: 1}
)

func (r slotRotation) pick(pool []string, day int) string {
	return pool[(day*r.step+r.offset)%len(pool)]
}

// Generator turns a TripRequest into day-by-day itinerary text. It is a
// pure text transformation; a zero-config generator is obtained with
// NewGenerator().
type Generator struct {
	regions map[string][]string
}

// NewGenerator creates a Generator, merging any configured catalog
// entries over the built-in regions.
func NewGenerator(opts ...Option) (*Generator, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	regions := make(map[string][]string, len(defaultRegions))
	for region, cities := range defaultRegions {
		regions[region] = cities
	}
	if options.CatalogPath != "" {
		extra, err := loadCatalog(options.CatalogPath)
		if err != nil {
			return nil, err
		}
		for region, cities := range extra {
			regions[region] = cities
		}
	}
	for region, cities := range options.Regions {
		regions[strings.ToLower(region)] = cities
	}

	return &Generator{regions: regions}, nil
}

// Generate renders the full itinerary for a request: header, then one
// block per day. Output is deterministic for identical input.
func (g *Generator) Generate(req TripRequest) string {
	days := tripDays(req.StartDate, req.EndDate)
	cities := g.cities(req.Destination)

	var b strings.Builder
	b.WriteString("# Trip itinerary: " + req.Destination + "\n")
	if len(req.Companions) > 0 {
		b.WriteString("Travelling with: " + strings.Join(funk.UniqString(req.Companions), ", ") + "\n")
	}
	if len(req.Interests) > 0 {
		b.WriteString("Interests: " + strings.Join(funk.UniqString(req.Interests), ", ") + "\n")
	}

	for i := 0; i < days; i++ {
		b.WriteString("\n")
		b.WriteString(renderDay(g.dayPlan(i, cities)))
	}
	return strings.TrimSpace(b.String())
}

// dayPlan resolves day i (0-based) against the city cycle and the slot
// pools.
func (g *Generator) dayPlan(i int, cities []string) DayPlan {
	return DayPlan{
		Index:     i + 1,
		City:      cities[i%len(cities)],
		Breakfast: breakfastRotation.pick(breakfastSpots, i),
		Morning:   morningRotation.pick(morningActivities, i),
		Lunch:     lunchRotation.pick(lunchSpots, i),
		Afternoon: afternoonRotation.pick(afternoonActivities, i),
		Dinner:    dinnerRotation.pick(dinnerSpots, i),
	}
}

// cities resolves a destination to its sub-location cycle. Unknown
// destinations become a single-city cycle of the raw destination.
func (g *Generator) cities(destination string) []string {
	if cities, ok := g.regions[strings.ToLower(destination)]; ok && len(cities) > 0 {
		return cities
	}
	return []string{destination}
}

// tripDays computes the trip length with an exclusive end date:
// 2024-05-01 to 2024-05-03 is a two-day trip. Unparseable dates and
// reversed ranges clamp to the minimum one-day trip.
func tripDays(startDate, endDate string) int {
	start, err := dateparse.ParseAny(startDate)
	if err != nil {
		return 1
	}
	end, err := dateparse.ParseAny(endDate)
	if err != nil {
		return 1
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// renderDay emits the fixed-format block the extractor parses against.
// The heading shape is shared contract with locations.go; change both
// together.
func renderDay(p DayPlan) string {
	return fmt.Sprintf(`**Day %d — %s**
- 08:00 — Breakfast at %s
- 10:00 — %s in %s
- 12:30 — Lunch at %s
- 15:00 — %s
- 19:30 — Dinner at %s
`, p.Index, p.City, p.Breakfast, p.Morning, p.City, p.Lunch, p.Afternoon, p.Dinner)
}
