package remote

import (
	"errors"

	"github.com/wayfarer-ai/wayfarer/tool/remote/client"
	"github.com/wayfarer-ai/wayfarer/utils/json"
)

// Manifest lists the collaborator services to connect to, keyed by
// service name. The JSON layout follows the usual mcpServers schema.
type Manifest struct {
	Services map[string]*client.ServiceParam `json:"mcpServers"`
}

// ParseManifest parses a manifest and derives each service's transport
// type: a command means stdio, a url means SSE, both or neither is an
// error.
func ParseManifest(manifest string) (map[string]*client.ServiceParam, error) {
	parsed := &Manifest{}
	if err := json.Unmarshal([]byte(manifest), parsed); err != nil {
		return nil, err
	}
	for name, param := range parsed.Services {
		if param.Command == "" && param.Url != "" {
			param.TransportType = client.TransportTypeSSE
			continue
		}
		if param.Command != "" && param.Url == "" {
			param.TransportType = client.TransportTypeStdio
			continue
		}
		return nil, errors.New("cannot derive collaborator transport type for " + name)
	}
	return parsed.Services, nil
}
