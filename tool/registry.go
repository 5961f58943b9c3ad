package tool

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tidwall/match"
)

// Registration binds a Tool to its execution policy. Construct with
// AutoExecuting or ConfirmationRequired; the zero value is not valid.
type Registration struct {
	t            Tool
	needsConfirm bool
	valid        bool
}

// AutoExecuting registers a tool the dispatcher may run as soon as the
// agent asks for it.
func AutoExecuting(t Tool) Registration {
	return Registration{t: t, valid: true}
}

// ConfirmationRequired registers a tool that acts on the outside world:
// the dispatcher refuses to run it until the caller confirms.
func ConfirmationRequired(t Tool) Registration {
	return Registration{t: t, needsConfirm: true, valid: true}
}

// Tool returns the registered tool.
func (r Registration) Tool() Tool { return r.t }

// NeedsConfirmation reports whether dispatch requires explicit
// confirmation.
func (r Registration) NeedsConfirmation() bool { return r.needsConfirm }

type dispatchOptions struct {
	confirmed bool
}

// DispatchOption configures a single Dispatch call.
type DispatchOption func(*dispatchOptions)

// WithConfirmed marks the dispatch as confirmed by a human, allowing
// confirmation-required tools to run.
func WithConfirmed() DispatchOption {
	return func(o *dispatchOptions) {
		o.confirmed = true
	}
}

// Registry holds tool registrations and dispatches agent tool calls,
// honoring each registration's execution policy. Safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	regs map[string]Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{regs: make(map[string]Registration)}
}

// Register adds a registration, replacing any previous one for the same
// tool name. Zero-value registrations are ignored.
func (r *Registry) Register(regs ...Registration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range regs {
		if !reg.valid || reg.t == nil {
			continue
		}
		r.regs[reg.t.Name()] = reg
	}
}

// Get retrieves a registration by exact tool name.
func (r *Registry) Get(name string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.regs[name]
	return reg, ok
}

// List returns the registered tools whose names match the wildcard
// pattern, sorted by name. Pattern "*" lists everything.
func (r *Registry) List(pattern string) []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tools := make([]Tool, 0, len(r.regs))
	for name, reg := range r.regs {
		if match.Match(name, pattern) {
			tools = append(tools, reg.t)
		}
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name() < tools[j].Name()
	})
	return tools
}

// Dispatch runs the named tool with the given JSON input. An unknown
// tool name or a missing confirmation comes back as a message string
// with a nil error, the same dialect the tools themselves speak.
func (r *Registry) Dispatch(ctx context.Context, name, input string, opts ...DispatchOption) (string, error) {
	options := &dispatchOptions{}
	for _, opt := range opts {
		opt(options)
	}

	reg, ok := r.Get(name)
	if !ok {
		return fmt.Sprintf("unknown tool: %s", name), nil
	}
	if reg.needsConfirm && !options.confirmed {
		return fmt.Sprintf("tool %s requires confirmation before it can run", name), nil
	}
	return reg.t.Call(ctx, input)
}
