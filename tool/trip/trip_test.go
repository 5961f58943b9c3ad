package trip

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-ai/wayfarer/tool"
	"github.com/wayfarer-ai/wayfarer/utils/json"
)

func TestPlannerToolRoundTrip(t *testing.T) {
	planner, err := NewPlannerTool()
	require.NoError(t, err)

	out, err := planner.Call(context.Background(),
		`{"destination": "japan", "start_date": "2024-05-01", "end_date": "2024-05-03"}`)
	require.NoError(t, err)

	// Exclusive end date: two days, cycling the japan catalog in order.
	assert.Contains(t, out, "**Day 1 — Tokyo**")
	assert.Contains(t, out, "**Day 2 — Kyoto**")
	assert.NotContains(t, out, "**Day 3")

	// Generator output and extractor output are joined by a blank line.
	parts := strings.SplitN(out, "\n\n## Map links", 2)
	require.Len(t, parts, 2, "map links section missing:\n%s", out)
	assert.Contains(t, parts[1], "(Tokyo)")
	assert.Contains(t, parts[1], "(Kyoto)")
	assert.Contains(t, parts[1], "https://www.google.com/maps/search/?api=1&query=")
}

func TestPlannerToolUnknownDestination(t *testing.T) {
	planner, err := NewPlannerTool()
	require.NoError(t, err)

	out, err := planner.Call(context.Background(),
		`{"destination": "Atlantis", "start_date": "2024-05-01", "end_date": "2024-05-03"}`)
	require.NoError(t, err)

	assert.Contains(t, out, "**Day 1 — Atlantis**")
	assert.Contains(t, out, "**Day 2 — Atlantis**")
}

func TestPlannerToolDegradedInput(t *testing.T) {
	planner, err := NewPlannerTool()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "NotJson",
			input: "plan me a trip",
			want:  "json unmarshal error, please try again",
		},
		{
			name:  "MissingDestination",
			input: `{"start_date": "2024-05-01", "end_date": "2024-05-03"}`,
			want:  "destination parameter is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := planner.Call(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPlannerToolUnparseableDatesYieldOneDay(t *testing.T) {
	planner, err := NewPlannerTool()
	require.NoError(t, err)

	out, err := planner.Call(context.Background(),
		`{"destination": "japan", "start_date": "sometime", "end_date": "later"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "**Day 1 — Tokyo**")
	assert.NotContains(t, out, "**Day 2")
}

func TestPlannerToolFencedInput(t *testing.T) {
	planner, err := NewPlannerTool()
	require.NoError(t, err)

	out, err := planner.Call(context.Background(),
		"```json\n{\"destination\": \"italy\", \"start_date\": \"2024-05-01\", \"end_date\": \"2024-05-02\"}\n```")
	require.NoError(t, err)
	assert.Contains(t, out, "**Day 1 — Rome**")
}

func TestPlannerToolCatalogOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Atlantis:\n  - Poseidonia\n  - Coral Gate\n"), 0o644))

	planner, err := NewPlannerTool(WithCatalogPath(path))
	require.NoError(t, err)

	out, err := planner.Call(context.Background(),
		`{"destination": "atlantis", "start_date": "2024-05-01", "end_date": "2024-05-04"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "**Day 1 — Poseidonia**")
	assert.Contains(t, out, "**Day 2 — Coral Gate**")
	assert.Contains(t, out, "**Day 3 — Poseidonia**")

	planner, err = NewPlannerTool(WithRegions(map[string][]string{
		"Mu": {"Lemuria"},
	}))
	require.NoError(t, err)
	out, err = planner.Call(context.Background(),
		`{"destination": "mu", "start_date": "2024-05-01", "end_date": "2024-05-02"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "**Day 1 — Lemuria**")
}

func TestPlannerToolBadCatalogPath(t *testing.T) {
	_, err := NewPlannerTool(WithCatalogPath(filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)
}

func TestMapLinksToolHandwrittenItinerary(t *testing.T) {
	mapper := NewMapLinksTool()

	input, err := json.Marshal(map[string]interface{}{
		"itinerary":   handwrittenItinerary,
		"destination": "france",
	})
	require.NoError(t, err)

	out, err := mapper.Call(context.Background(), string(input))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "## Map links"))
	assert.Contains(t, out, "**Day 2 — Lyon**")
	assert.Contains(t, out, "No recognizable locations found.")
}

func TestMapLinksToolDegradedInput(t *testing.T) {
	mapper := NewMapLinksTool()

	out, err := mapper.Call(context.Background(), "{}")
	require.NoError(t, err)
	assert.Equal(t, "itinerary parameter is required", out)

	out, err = mapper.Call(context.Background(), "not json")
	require.NoError(t, err)
	assert.Equal(t, "json unmarshal error, please try again", out)
}

func TestToolInterfaces(t *testing.T) {
	planner, err := NewPlannerTool()
	require.NoError(t, err)

	tests := []struct {
		name string
		tool tool.Tool
	}{
		{"PlannerTool", planner},
		{"MapLinksTool", NewMapLinksTool()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.tool.Name())
			assert.NotEmpty(t, tt.tool.Description())
			assert.NotNil(t, tt.tool.Schema())
			assert.True(t, tt.tool.Strict())
		})
	}
}
