package trip

import (
	"net/url"
	"regexp"
	"strings"
)

const mapSearchURL = "https://www.google.com/maps/search/?api=1&query="

// The heading regexes mirror the block format emitted by renderDay in
// itinerary.go; change both together.
var (
	dayHeadingRe = regexp.MustCompile(`\*\*Day \d+`)
	dayTitleRe   = regexp.MustCompile(`\*\*Day \d+[^*]*`)

	// A preposition followed by a capitalized phrase is treated as a
	// place mention. The capture is greedy across letters, apostrophes,
	// ampersands, hyphens and spaces, so multi-word over-capture is
	// possible; that is accepted as a reproducible heuristic.
	placeRe = regexp.MustCompile(`\b(?i:lunch at|dinner at|at|in|around|near|visit|explore) +([A-Z][A-Za-z'&\- ]+)`)

	// Context resolution uses the narrower preposition set, without
	// "at": meal venues never anchor a day geographically.
	contextRe = regexp.MustCompile(`\b(?i:in|around|near|visit|explore) +([A-Z][A-Za-z'&\- ]+)`)
)

// ExtractDays recovers place mentions from itinerary text, one entry per
// day heading. destination is the context fallback for days with no
// geographic anchor of their own; it may be empty.
func ExtractDays(text, destination string) []ExtractedDay {
	segments := dayHeadingRe.Split(text, -1)
	titles := dayTitleRe.FindAllString(text, -1)
	if len(segments) > 0 {
		// Everything before the first heading is the itinerary header.
		segments = segments[1:]
	}

	days := make([]ExtractedDay, 0, len(segments))
	for i, segment := range segments {
		title := ""
		if i < len(titles) {
			title = titles[i] + "**"
		}

		context := dayContext(segment, destination)
		var places []PlaceRef
		for _, m := range placeRe.FindAllStringSubmatch(segment, -1) {
			places = append(places, PlaceRef{
				Place:   strings.TrimSpace(m[1]),
				Context: context,
			})
		}
		days = append(days, ExtractedDay{Title: title, Places: places})
	}
	return days
}

// dayContext resolves a day block's geographic anchor: the first narrow
// preposition match, else the overall destination, else a literal
// placeholder.
func dayContext(segment, destination string) string {
	if m := contextRe.FindStringSubmatch(segment); m != nil {
		return strings.TrimSpace(m[1])
	}
	if destination != "" {
		return destination
	}
	return "the trip destination"
}

// BuildMapLink builds a map-search link for one place. The query is
// "<place>, <context>", URL-encoded.
func BuildMapLink(place, context string) MapLink {
	return MapLink{
		Place:   place,
		Context: context,
		URL:     mapSearchURL + url.QueryEscape(place+", "+context),
	}
}

// ExtractMapLinks renders the map-links block for itinerary text: a
// fixed header, then per day the heading text and one markdown link per
// recovered place. Days with no recognized places are kept with a
// placeholder line. The input does not have to be machine-generated; any
// text using the day-heading format works.
func ExtractMapLinks(text, destination string) string {
	var b strings.Builder
	b.WriteString("## Map links\n")

	for _, day := range ExtractDays(text, destination) {
		b.WriteString("\n")
		if day.Title != "" {
			b.WriteString(day.Title + "\n")
		}
		if len(day.Places) == 0 {
			b.WriteString("No recognizable locations found.\n")
			continue
		}
		for _, place := range day.Places {
			link := BuildMapLink(place.Place, place.Context)
			b.WriteString("- [" + link.Place + " (" + link.Context + ")](" + link.URL + ")\n")
		}
	}
	return strings.TrimSpace(b.String())
}
