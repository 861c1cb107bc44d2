// Package tools provides the agent's tool capabilities behind an explicit
// registry. The registry is constructed at wiring time and passed to its
// consumers; nothing in this package is a process-wide singleton.
package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Tool is a single capability the agent can invoke. Descriptors follow the
// MCP tool shape so the same registry backs the HTTP listing and the MCP
// server.
type Tool interface {
	Name() string
	Description() string
	InputSchema() map[string]any
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// Descriptor is the wire representation of a registered tool.
type Descriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

var ErrToolNotFound = errors.New("tool not found")

type Registry struct {
	tools map[string]Tool
}

func NewRegistry(tools ...Tool) (*Registry, error) {
	registry := &Registry{
		tools: make(map[string]Tool, len(tools)),
	}

	for _, tool := range tools {
		if _, exists := registry.tools[tool.Name()]; exists {
			return nil, fmt.Errorf("duplicate tool name: %s", tool.Name())
		}
		registry.tools[tool.Name()] = tool
	}

	return registry, nil
}

func (r *Registry) Get(name string) (Tool, error) {
	tool, exists := r.tools[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return tool, nil
}

// List returns descriptors for every registered tool, sorted by name for
// stable output.
func (r *Registry) List() []Descriptor {
	descriptors := make([]Descriptor, 0, len(r.tools))
	for _, tool := range r.tools {
		descriptors = append(descriptors, Descriptor{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		})
	}

	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Name < descriptors[j].Name
	})

	return descriptors
}

// Execute looks up and runs a tool in one step.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (string, error) {
	tool, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return tool.Execute(ctx, args)
}

func stringArg(args map[string]any, key string) (string, error) {
	value, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string", key)
	}
	return str, nil
}
