package remote

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wayfarer-ai/wayfarer/tool"
	"github.com/wayfarer-ai/wayfarer/tool/remote/client"
	"github.com/wayfarer-ai/wayfarer/utils/json"
)

// Tool proxies one tool served by an external collaborator. The
// collaborator's failures surface as message strings, never as errors,
// so the agent loop treats them like any other tool observation.
type Tool struct {
	client     *client.Client
	name       string
	desc       string
	properties *tool.PropertiesSchema
}

var _ tool.Tool = Tool{}

// New connects to every collaborator in the manifest and returns their
// served tools as local tools.
func New(ctx context.Context, manifest string) ([]tool.Tool, error) {
	services, err := ParseManifest(manifest)
	if err != nil {
		return nil, err
	}
	tools := make([]tool.Tool, 0, len(services))
	for name, param := range services {
		c, err := client.New(ctx, name, param)
		if err != nil {
			return nil, err
		}
		ts, err := c.ListTools(ctx)
		if err != nil {
			return nil, err
		}
		tools = append(tools, wrapServedTools(c, ts)...)
	}
	return tools, nil
}

func wrapServedTools(c *client.Client, ts []mcp.Tool) []tool.Tool {
	tools := make([]tool.Tool, 0, len(ts))
	for _, t := range ts {
		marshal, _ := json.Marshal(t.InputSchema)
		ct := &Tool{
			client:     c,
			name:       t.Name,
			desc:       t.Description,
			properties: &tool.PropertiesSchema{},
		}
		_ = json.Unmarshal(marshal, ct.properties)
		tools = append(tools, *ct)
	}
	return tools
}

// Name returns a name for the tool.
func (t Tool) Name() string {
	return t.name
}

// Description returns a description for the tool.
func (t Tool) Description() string {
	desc := t.desc
	if t.properties != nil {
		marshal, _ := json.Marshal(t.properties)
		desc += "\nthis is input schema for this tool:\n" + string(marshal)
	}
	return desc
}

func (t Tool) Schema() *tool.PropertiesSchema {
	return t.properties
}

func (t Tool) Strict() bool {
	return true
}

// Call forwards the input to the collaborator and returns its result.
func (t Tool) Call(ctx context.Context, input string) (string, error) {
	input = json.TrimJsonString(input)
	result, err := t.client.CallTool(ctx, t.name, input)
	if err != nil {
		return "failed to call tool, err: " + err.Error(), nil
	}
	marshal, _ := json.Marshal(result)
	ret := string(marshal)
	if len(ret) > 2000 {
		ret = ret[:2000]
	}
	return ret, nil
}
