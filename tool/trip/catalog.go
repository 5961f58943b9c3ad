package trip

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// defaultRegions expands a broad destination into representative
// sub-locations. Keys are lowercase; day assignment cycles through the
// list in order.
var defaultRegions = map[string][]string{
	"japan":       {"Tokyo", "Kyoto", "Osaka"},
	"france":      {"Paris", "Lyon", "Nice"},
	"italy":       {"Rome", "Florence", "Venice"},
	"spain":       {"Madrid", "Barcelona", "Seville"},
	"vietnam":     {"Hanoi", "Da Nang", "Ho Chi Minh City"},
	"iceland":     {"Reykjavik", "Akureyri", "Vik"},
	"new zealand": {"Auckland", "Queenstown", "Wellington"},
}

// Example content pools for the five day slots. Meal entries are venue
// names; morning entries are rendered with the day's city appended as
// "in <city>", afternoon entries carry their own landmark phrase.
var (
	breakfastSpots = []string{
		"Riverside Bakery",
		"Old Town Espresso Bar",
		"Harbor View Cafe",
		"Corner Brioche House",
	}
	lunchSpots = []string{
		"Market Hall Bistro",
		"Cedar & Sage Kitchen",
		"Lakeside Noodle Bar",
		"Stone Oven Trattoria",
	}
	dinnerSpots = []string{
		"The Lantern House",
		"Saffron Courtyard",
		"Harborlight Grill",
		"Juniper & Vine",
	}
	morningActivities = []string{
		"Guided old town walk",
		"Street market browsing",
		"Riverside cycling loop",
		"Botanic garden stroll",
		"Local history museum morning",
	}
	afternoonActivities = []string{
		"Relaxed stroll near Harborfront Promenade",
		"Browse the stalls around Artisan Quarter",
		"Boat ride near Willow Bridge",
		"Free time to explore Grand Arcade",
		"Coffee break at Clocktower Square",
	}
)

// loadCatalog reads a YAML region catalog (region name -> city list) and
// returns it with lowercased keys.
func loadCatalog(path string) (map[string][]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read region catalog")
	}
	raw := make(map[string][]string)
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse region catalog")
	}
	catalog := make(map[string][]string, len(raw))
	for region, cities := range raw {
		catalog[strings.ToLower(region)] = cities
	}
	return catalog, nil
}
