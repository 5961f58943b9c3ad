package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// New connects to a collaborator service described by param.
func New(ctx context.Context, name string, param *ServiceParam) (*Client, error) {
	c := &Client{
		name:  name,
		param: param,
	}
	var mcpClient client.MCPClient
	var err error
	switch param.TransportType {
	case TransportTypeSSE:
		// SSE connections are established lazily in ListTools.
	case TransportTypeStdio:
		mcpClient, err = c.initStdioClient(ctx)
	default:
		return nil, fmt.Errorf("unsupported collaborator transport type: %s", param.TransportType)
	}
	if err != nil {
		return nil, err
	}
	c.c = mcpClient
	return c, nil
}

func (c *Client) initStdioClient(ctx context.Context) (client.MCPClient, error) {
	envs := make([]string, 0, len(c.param.Env))
	for k, v := range c.param.Env {
		envs = append(envs, fmt.Sprintf("%s=%s", k, v))
	}
	mc, err := client.NewStdioMCPClient(
		c.param.Command, envs, c.param.Args...)
	if err != nil {
		log.Printf("failed to initialize stdio client: %v", err)
		return nil, err
	}
	request := mcp.InitializeRequest{}
	request.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	request.Params.ClientInfo = mcp.Implementation{
		Name:    "wayfarer-client",
		Version: "1.0.0",
	}
	_, err = mc.Initialize(ctx, request)
	if err != nil {
		log.Printf("error initializing collaborator client: %v", err)
		return nil, err
	}
	return mc, nil
}

func (c *Client) initSSEClient(ctx context.Context) (client.MCPClient, error) {
	path, _ := url.JoinPath(c.param.Url, "/sse")
	mc, err := client.NewSSEMCPClient(path)
	if err != nil {
		log.Printf("failed to initialize SSE client: %v", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = mc.Start(ctx); err != nil {
		log.Printf("failed to start SSE client: %v", err)
		return nil, err
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "wayfarer-client",
		Version: "1.0.0",
	}

	_, err = mc.Initialize(ctx, initRequest)
	if err != nil {
		log.Printf("failed to initialize collaborator client: %v", err)
		return nil, err
	}
	return mc, nil
}

// ListTools lists the tools the collaborator serves.
func (c *Client) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	var err error
	if c.param.TransportType == TransportTypeSSE {
		c.c, err = c.initSSEClient(ctx)
		if err != nil {
			log.Printf("failed to initialize SSE client: %v", err)
			return nil, err
		}
	}
	toolsRequest := mcp.ListToolsRequest{}
	result, err := c.c.ListTools(ctx, toolsRequest)
	if err != nil {
		log.Printf("failed to list tools: %v", err)
		return nil, err
	}
	return result.Tools, nil
}

// CallTool invokes a served tool by name with a JSON object input.
func (c *Client) CallTool(ctx context.Context, name, input string) (*mcp.CallToolResult, error) {
	request := mcp.CallToolRequest{}
	param := make(map[string]any)
	if err := json.Unmarshal([]byte(input), &param); err != nil {
		log.Printf("failed to unmarshal input: %v", err)
		return nil, err
	}
	request.Params.Name = name
	request.Params.Arguments = param

	result, err := c.c.CallTool(ctx, request)
	if err != nil {
		log.Printf("failed to call tool: %v", err)
		return nil, err
	}

	return result, nil
}

// Close shuts down the connection.
func (c *Client) Close() error {
	if c.c != nil {
		return c.c.Close()
	}
	return nil
}
