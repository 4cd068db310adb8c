package tools

import (
	"unity-bridge/core/utils"

	"github.com/mark3labs/mcp-go/mcp"
)

// Argument validation happens here, before the round trip to the editor;
// everything the editor can decide for itself is forwarded untouched.

func (r *Registry) handleScriptRead(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	if utils.ToString(arguments["path"]) == "" {
		return mcp.NewToolResultError("script_read requires a non-empty path"), nil
	}
	return r.dispatch("script_read", arguments)
}

func (r *Registry) handleScriptWrite(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	if utils.ToString(arguments["path"]) == "" {
		return mcp.NewToolResultError("script_write requires a non-empty path"), nil
	}
	if _, ok := arguments["content"]; !ok {
		return mcp.NewToolResultError("script_write requires content"), nil
	}
	return r.dispatch("script_write", arguments)
}

func (r *Registry) handleAssetFind(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	if raw, ok := arguments["maxResults"]; ok {
		if utils.ToInt(raw) < 0 {
			return mcp.NewToolResultError("asset_find maxResults must not be negative"), nil
		}
	}
	return r.dispatch("asset_find", arguments)
}

func (r *Registry) handleEditorGetLogs(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	switch lvl := utils.ToString(arguments["logLevel"]); lvl {
	case "", "all", "error", "warning", "log", "exception":
	default:
		return mcp.NewToolResultError("editor_get_logs logLevel must be one of all, error, warning, log, exception"), nil
	}
	return r.dispatch("editor_get_logs", arguments)
}
