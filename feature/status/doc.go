// Package status implements the HTTP management surface of the bridge.
//
// Two endpoints are exposed on the management port:
//
//   - GET /health: process health, version, uptime and whether a live
//     connection to the Unity editor is currently held.
//   - GET /config: the resolved configuration snapshot, for operators
//     verifying which defaults, environment values and overrides won.
//
// The feature is read-only; it never mutates bridge state.
package status
