// Package utils provides conversion helpers for loosely typed values.
//
// MCP tool arguments arrive as map[string]any decoded from JSON, so string
// and numeric fields need defensive coercion before they can be validated.
// ToString and ToInt centralize that coercion.
package utils
