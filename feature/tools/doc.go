// Package tools exposes Unity editor operations as MCP tools.
//
// Each tool shares one dispatch path: the tool name doubles as the editor
// action, and the argument map is forwarded as the request parameters. The
// editor owns the semantics; this package owns the schema, cheap argument
// validation and the rendering of results back to the MCP client.
//
// Failures are always returned as MCP tool errors rather than Go errors, so
// a broken editor connection degrades into an explanatory message for the
// client instead of a dropped request.
package tools
