package datetime

import (
	"context"
	"fmt"
	"time"

	"github.com/wayfarer-ai/wayfarer/tool"
	"github.com/wayfarer-ai/wayfarer/utils/json"
)

// Tool reports the current date and time, optionally in a requested
// timezone.
type Tool struct {
	now func() time.Time
}

var _ tool.Tool = &Tool{}

// Options represents the configuration options for the datetime tool.
type Options struct {
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Option is a function that configures Options.
type Option func(*Options)

// WithClock sets the clock function.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// New creates a datetime tool using the system clock unless overridden.
func New(opts ...Option) *Tool {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	now := options.Now
	if now == nil {
		now = time.Now
	}
	return &Tool{now: now}
}

// Name returns the name of the tool.
func (t *Tool) Name() string {
	return "CurrentTime"
}

// Description returns the description of the tool.
func (t *Tool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Get the current date and time, optionally in a specific timezone.
Input must be json schema: ` + string(bytes) + `
Example Input: {"timezone": "Asia/Tokyo"}`
}

func (t *Tool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"timezone": {
				Type:        tool.TypeString,
				Description: "Optional IANA timezone name, e.g. Europe/Paris",
			},
		},
	}
}

func (t *Tool) Strict() bool {
	return true
}

// Call formats the current time, in UTC unless a timezone is given.
func (t *Tool) Call(_ context.Context, input string) (string, error) {
	var params map[string]interface{}
	if err := json.Unmarshal([]byte(json.TrimJsonString(input)), &params); err != nil {
		return "json unmarshal error, please try again", nil
	}

	loc := time.UTC
	if tz, ok := params["timezone"].(string); ok && tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Sprintf("unknown timezone %q, use an IANA name like Europe/Paris", tz), nil
		}
		loc = parsed
	}

	return t.now().In(loc).Format("Mon, 02 Jan 2006 15:04:05 MST"), nil
}
