// Package middleware contains HTTP middleware for the Fiber management app.
//
// It provides cross-cutting concerns that sit between the request and the
// handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Middleware components are registered globally in the start command before
// features are loaded.
package middleware
