// Package mcp serves the scoring tools over the Model Context Protocol, a
// JSON-RPC 2.0 dialect, plus two plain REST shortcuts for listing and calling
// tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hiringplatform/backend/tools"
)

const (
	jsonRPCVersion  = "2.0"
	protocolVersion = "2024-11-05"
	serverName      = "hiring-platform"
	serverVersion   = "1.0.0"
)

// JSON-RPC error codes
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

var errUnknownTool = errors.New("tool not found")

// Request is a JSON-RPC request or, without an id, a notification
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

func (r *Request) isNotification() bool {
	return len(r.ID) == 0 || string(r.ID) == "null"
}

// Response carries either a result or an error
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is a JSON-RPC error object
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc %d: %s", e.Code, e.Message)
}

// InitializeResult answers the initialize handshake
type InitializeResult struct {
	ProtocolVersion string         `json:"protocolVersion"`
	Capabilities    map[string]any `json:"capabilities"`
	ServerInfo      ServerInfo     `json:"serverInfo"`
}

// ServerInfo names this server to clients
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ToolsListResult is the result of tools/list
type ToolsListResult struct {
	Tools []ToolDefinition `json:"tools"`
}

// ToolDefinition describes one tool in MCP terms
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// ToolCallParams are the params of tools/call
type ToolCallParams struct {
	Name      string          `json:"name" binding:"required"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolCallResult is the result of tools/call. IsError is set when the tool
// rejected its input; the tool's own envelope is in the text content.
type ToolCallResult struct {
	Content []ContentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// ContentItem is a piece of tool output
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type methodHandler func(ctx context.Context, params json.RawMessage) (any, *Error)

// Server dispatches MCP methods to the tool registry
type Server struct {
	registry *tools.ToolRegistry
	logger   *zap.Logger
	methods  map[string]methodHandler
}

// NewServer creates an MCP server over registry
func NewServer(registry *tools.ToolRegistry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		registry: registry,
		logger:   logger.Named("mcp"),
	}
	s.methods = map[string]methodHandler{
		"initialize": s.initialize,
		"ping":       func(context.Context, json.RawMessage) (any, *Error) { return struct{}{}, nil },
		"tools/list": func(context.Context, json.RawMessage) (any, *Error) { return s.listTools(), nil },
		"tools/call": s.rpcCallTool,
	}
	return s
}

// RegisterRoutes mounts the JSON-RPC endpoint and the REST shortcuts
func (s *Server) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/mcp", s.HandleMCP)
	router.POST("/mcp/tools/list", s.HandleToolsList)
	router.POST("/mcp/tools/call", s.HandleToolsCall)
}

// HandleMCP handles one JSON-RPC message
func (s *Server) HandleMCP(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respond(c, nil, nil, &Error{Code: codeParseError, Message: "Parse error", Data: err.Error()})
		return
	}
	if req.JSONRPC != jsonRPCVersion || req.Method == "" {
		s.respond(c, req.ID, nil, &Error{Code: codeInvalidRequest, Message: "Invalid request"})
		return
	}

	// notifications such as notifications/initialized get no response body
	if req.isNotification() {
		if !strings.HasPrefix(req.Method, "notifications/") {
			s.logger.Debug("ignoring notification", zap.String("method", req.Method))
		}
		c.Status(http.StatusAccepted)
		return
	}

	handler, ok := s.methods[req.Method]
	if !ok {
		s.respond(c, req.ID, nil, &Error{Code: codeMethodNotFound, Message: "Method not found", Data: req.Method})
		return
	}

	result, rpcErr := handler(c.Request.Context(), req.Params)
	s.respond(c, req.ID, result, rpcErr)
}

// HandleToolsList handles POST /mcp/tools/list
func (s *Server) HandleToolsList(c *gin.Context) {
	c.JSON(http.StatusOK, s.listTools())
}

// HandleToolsCall handles POST /mcp/tools/call. Unknown tools and rejected
// input come back as an error result with status 200.
func (s *Server) HandleToolsCall(c *gin.Context) {
	var params ToolCallParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, err := s.callTool(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusOK, textResult(err.Error(), true))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) initialize(context.Context, json.RawMessage) (any, *Error) {
	return InitializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities:    map[string]any{"tools": map[string]any{"listChanged": false}},
		ServerInfo:      ServerInfo{Name: serverName, Version: serverVersion},
	}, nil
}

func (s *Server) listTools() ToolsListResult {
	defs := s.registry.Definitions()
	out := ToolsListResult{Tools: make([]ToolDefinition, len(defs))}
	for i, def := range defs {
		out.Tools[i] = ToolDefinition{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.Parameters,
		}
	}
	return out
}

func (s *Server) rpcCallTool(ctx context.Context, raw json.RawMessage) (any, *Error) {
	var params ToolCallParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, &Error{Code: codeInvalidParams, Message: "Invalid params", Data: err.Error()}
	}
	if params.Name == "" {
		return nil, &Error{Code: codeInvalidParams, Message: "Invalid params", Data: "name is required"}
	}

	result, err := s.callTool(ctx, params)
	switch {
	case errors.Is(err, errUnknownTool):
		return nil, &Error{Code: codeInvalidParams, Message: "Unknown tool", Data: params.Name}
	case err != nil:
		return textResult(err.Error(), true), nil
	}
	return result, nil
}

// callTool runs a tool and flags results whose envelope reports a failure
func (s *Server) callTool(ctx context.Context, params ToolCallParams) (ToolCallResult, error) {
	tool, ok := s.registry.Get(params.Name)
	if !ok {
		return ToolCallResult{}, fmt.Errorf("%w: %s", errUnknownTool, params.Name)
	}

	args := params.Arguments
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	start := time.Now()
	raw, err := tool.Execute(ctx, args)
	if err != nil {
		s.logger.Error("tool failed", zap.String("tool", params.Name), zap.Error(err))
		return ToolCallResult{}, err
	}

	var envelope tools.ToolResult
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ToolCallResult{}, fmt.Errorf("tool %s returned malformed output: %w", params.Name, err)
	}
	if !envelope.Success {
		s.logger.Info("tool rejected input", zap.String("tool", params.Name), zap.String("reason", envelope.Error))
	}

	s.logger.Debug("tool completed", zap.String("tool", params.Name), zap.Duration("took", time.Since(start)))
	return textResult(string(raw), !envelope.Success), nil
}

func textResult(text string, isError bool) ToolCallResult {
	return ToolCallResult{
		Content: []ContentItem{{Type: "text", Text: text}},
		IsError: isError,
	}
}

func (s *Server) respond(c *gin.Context, id json.RawMessage, result any, rpcErr *Error) {
	if len(id) == 0 {
		id = json.RawMessage("null")
	}
	resp := Response{JSONRPC: jsonRPCVersion, ID: id}
	if rpcErr != nil {
		resp.Error = rpcErr
	} else {
		resp.Result = result
	}
	c.JSON(http.StatusOK, resp)
}
