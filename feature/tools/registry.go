package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Caller executes one editor action and returns its raw result payload.
// *bridge.Client satisfies it; tests substitute a stub.
type Caller interface {
	Call(ctx context.Context, action string, params map[string]any) (json.RawMessage, error)
}

// Registry wires the editor tool set onto an MCP server. Every tool is a
// thin schema over the same dispatch path: the tool name is the editor
// action, the arguments are forwarded as the parameter map.
type Registry struct {
	caller Caller
	logger *zap.Logger
}

// NewRegistry creates a registry dispatching to the given editor caller.
func NewRegistry(caller Caller, logger *zap.Logger) *Registry {
	return &Registry{caller: caller, logger: logger}
}

// Register declares the editor tool set on the MCP server.
func (r *Registry) Register(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("script_read",
			mcp.WithDescription("Read script file content from the Unity project"),
			mcp.WithString("path", mcp.Description("Script file path relative to the Assets directory"), mcp.Required()),
		),
		r.handleScriptRead,
	)

	s.AddTool(
		mcp.NewTool("script_write",
			mcp.WithDescription("Create or update a script file in the Unity project"),
			mcp.WithString("path", mcp.Description("Script file path relative to the Assets directory"), mcp.Required()),
			mcp.WithString("content", mcp.Description("Script file content"), mcp.Required()),
			mcp.WithBoolean("overwrite", mcp.Description("Whether to overwrite an existing file"), mcp.DefaultBool(true)),
		),
		r.handleScriptWrite,
	)

	s.AddTool(
		mcp.NewTool("scene_get",
			mcp.WithDescription("Get the current Unity scene hierarchy"),
			mcp.WithBoolean("includeComponents", mcp.Description("Whether to include component information"), mcp.DefaultBool(false)),
			mcp.WithBoolean("includeTransform", mcp.Description("Whether to include Transform information"), mcp.DefaultBool(true)),
		),
		r.handler("scene_get"),
	)

	s.AddTool(
		mcp.NewTool("scene_create_object",
			mcp.WithDescription("Create a new GameObject in the Unity scene"),
			mcp.WithString("name", mcp.Description("GameObject name"), mcp.DefaultString("New GameObject")),
			mcp.WithNumber("parentId", mcp.Description("InstanceID of the parent object")),
		),
		r.handler("scene_create_object"),
	)

	s.AddTool(
		mcp.NewTool("asset_find",
			mcp.WithDescription("Find project assets by path, type or name"),
			mcp.WithString("path", mcp.Description("Search path relative to the Assets directory"), mcp.DefaultString("Assets")),
			mcp.WithString("type", mcp.Description("Asset type name (Texture2D, AudioClip, ...)")),
			mcp.WithString("name", mcp.Description("Asset name, wildcards supported")),
			mcp.WithBoolean("recursive", mcp.Description("Whether to search subdirectories"), mcp.DefaultBool(true)),
			mcp.WithNumber("maxResults", mcp.Description("Maximum number of results")),
		),
		r.handleAssetFind,
	)

	s.AddTool(
		mcp.NewTool("editor_get_logs",
			mcp.WithDescription("Read Unity editor console logs"),
			mcp.WithNumber("maxLogs", mcp.Description("Maximum number of log entries to return")),
			mcp.WithString("logLevel", mcp.Description("Log level filter (all/error/warning/log/exception)"), mcp.DefaultString("all")),
			mcp.WithBoolean("clearLogs", mcp.Description("Whether to clear logs after reading"), mcp.DefaultBool(false)),
		),
		r.handleEditorGetLogs,
	)
}

// handler returns a dispatcher that forwards arguments to the editor as-is.
func (r *Registry) handler(action string) func(map[string]interface{}) (*mcp.CallToolResult, error) {
	return func(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
		return r.dispatch(action, arguments)
	}
}

// dispatch performs one editor round trip and renders the outcome as an MCP
// tool result. Transport and editor failures both surface as tool errors so
// the MCP client sees a result rather than a protocol fault.
func (r *Registry) dispatch(action string, arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	start := time.Now()

	data, err := r.caller.Call(context.Background(), action, arguments)
	if err != nil {
		r.logger.Error("Editor tool failed",
			zap.String("tool", action),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	r.logger.Info("Editor tool completed",
		zap.String("tool", action),
		zap.Duration("duration", time.Since(start)))

	return mcp.NewToolResultText(formatResult(action, data)), nil
}

// formatResult renders the editor payload for the MCP client.
func formatResult(action string, data json.RawMessage) string {
	if len(data) == 0 {
		return fmt.Sprintf("%s completed", action)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return string(data)
	}
	return pretty.String()
}
