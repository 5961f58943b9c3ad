package tool

import "context"

// Type is the JSON schema type of a tool parameter.
type Type string

const (
	TypeJson   Type = "object"
	TypeString Type = "string"
	TypeNumber Type = "number"
	TypeArr    Type = "array"
)

// PropertySchema describes a single tool parameter.
type PropertySchema struct {
	Type        Type            `json:"type"`
	Description string          `json:"description,omitempty"`
	Enum        []string        `json:"enum,omitempty"`
	Items       *PropertySchema `json:"items,omitempty"`
}

// PropertiesSchema describes the JSON object a tool accepts as input.
type PropertiesSchema struct {
	Type       Type                      `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

// Tool is the interface all agent-callable tools implement. Call takes a
// JSON object string and returns the observation for the agent. Invalid
// input or lookup misses are reported as a readable message string with a
// nil error so the agent can read the message and retry; a non-nil error
// means the tool itself is broken.
type Tool interface {
	Name() string

	Description() string

	Schema() *PropertiesSchema

	Strict() bool

	Call(ctx context.Context, input string) (string, error)
}
