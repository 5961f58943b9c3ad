package weather

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/wayfarer-ai/wayfarer/tool"
	"github.com/wayfarer-ai/wayfarer/utils/json"
	"github.com/wayfarer-ai/wayfarer/utils/ratelimit"
	"github.com/wayfarer-ai/wayfarer/utils/request"
)

// Report is a weather service response.
type Report struct {
	City         string `json:"city"`
	Condition    string `json:"condition"`
	TemperatureC int    `json:"temperature_c"`
}

// Service is the weather collaborator the tool delegates to.
type Service interface {
	Current(ctx context.Context, city string) (*Report, error)
}

var conditions = []string{
	"clear skies",
	"partly cloudy",
	"light rain",
	"overcast",
	"scattered showers",
	"sunny",
}

// stubService derives a stable canned report from the city name; the
// same city always gets the same weather.
type stubService struct{}

func (stubService) Current(_ context.Context, city string) (*Report, error) {
	sum := 0
	for _, r := range strings.ToLower(city) {
		sum += int(r)
	}
	return &Report{
		City:         city,
		Condition:    conditions[sum%len(conditions)],
		TemperatureC: 8 + sum%18,
	}, nil
}

// HTTPService queries a real weather endpoint, throttled so agent retry
// loops cannot hammer the collaborator.
type HTTPService struct {
	endpoint string
	limiter  *ratelimit.TokenBucket
}

// NewHTTPService creates a weather service client for the given
// endpoint. The endpoint receives GET requests with a city query
// parameter and responds with a Report JSON body.
func NewHTTPService(endpoint string) *HTTPService {
	return &HTTPService{
		endpoint: endpoint,
		limiter:  ratelimit.NewTokenBucket(2, 5),
	}
}

func (s *HTTPService) Current(ctx context.Context, city string) (*Report, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	report := &Report{}
	err := request.Request(ctx, "GET", s.endpoint+"?city="+url.QueryEscape(city), "", report)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Tool reports current weather for a city.
type Tool struct {
	service Service
}

var _ tool.Tool = &Tool{}

// New creates a weather tool. Without options it uses the canned stub
// service.
func New(opts ...Option) *Tool {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	service := options.Service
	if service == nil && options.Endpoint != "" {
		service = NewHTTPService(options.Endpoint)
	}
	if service == nil {
		service = stubService{}
	}
	return &Tool{service: service}
}

// Name returns the name of the tool.
func (t *Tool) Name() string {
	return "CurrentWeather"
}

// Description returns the description of the tool.
func (t *Tool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Look up current weather conditions for a city.
Input must be json schema: ` + string(bytes) + `
Example Input: {"city": "Tokyo"}`
}

func (t *Tool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"city": {
				Type:        tool.TypeString,
				Description: "The city to report weather for",
			},
		},
		Required: []string{"city"},
	}
}

func (t *Tool) Strict() bool {
	return true
}

// Call looks up the weather for the requested city.
func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var params map[string]interface{}
	if err := json.Unmarshal([]byte(json.TrimJsonString(input)), &params); err != nil {
		return "json unmarshal error, please try again", nil
	}

	city, ok := params["city"].(string)
	if !ok || city == "" {
		return "city parameter is required", nil
	}

	report, err := t.service.Current(ctx, city)
	if err != nil {
		return "weather service unavailable, please try again later", nil
	}
	return fmt.Sprintf("Weather in %s: %s, %d°C", report.City, report.Condition, report.TemperatureC), nil
}
