package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Tool is a scoring capability callable by external agents
type Tool interface {
	Name() string
	Description() string
	// InputSchema is the JSON schema of the arguments Execute accepts
	InputSchema() map[string]any
	// Execute returns an encoded ToolResult. Bad input is reported inside the
	// result; the error return is reserved for encoding failures.
	Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
}

// Definition describes a tool to a client
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// ToolRegistry is a concurrency-safe set of tools keyed by name
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewToolRegistry creates an empty registry
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{tools: make(map[string]Tool)}
}

// NewScoringRegistry returns a registry with the matching, screening and
// resume tools registered
func NewScoringRegistry(parser ResumeParser) *ToolRegistry {
	r := NewToolRegistry()
	for _, tool := range []Tool{NewMatchScoreTool(), NewScreeningTool(), NewResumeTool(parser)} {
		if err := r.Register(tool); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a tool. Names must be unique.
func (r *ToolRegistry) Register(tool Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q is already registered", name)
	}
	r.tools[name] = tool
	return nil
}

// Get looks a tool up by name
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[name]
	return tool, ok
}

// List returns the registered tools ordered by name
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	list := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		list = append(list, tool)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// Definitions describes every registered tool, ordered by name
func (r *ToolRegistry) Definitions() []Definition {
	list := r.List()
	defs := make([]Definition, len(list))
	for i, tool := range list {
		defs[i] = Definition{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.InputSchema(),
		}
	}
	return defs
}

// ToolResult is the envelope every tool returns
type ToolResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func success(data any) (json.RawMessage, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding tool output: %w", err)
	}
	return json.Marshal(ToolResult{Success: true, Data: encoded})
}

func failure(format string, args ...any) (json.RawMessage, error) {
	return json.Marshal(ToolResult{Error: fmt.Sprintf(format, args...)})
}
