// Package server holds the listener configuration for the bridge process.
//
// The bridge exposes two adjacent ports: the configured port carries the MCP
// SSE endpoint, and the next port up carries the HTTP management surface
// (health and configuration endpoints). Only the SSE port is configurable;
// the management port is derived from it.
//
// # Usage
//
// This package is used by the core/config package to embed listener settings
// and by the start command to bind both servers.
package server
