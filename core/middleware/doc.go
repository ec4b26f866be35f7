// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Access: writes the one-line request log (time, colored status, elapsed
//     milliseconds, path).
//   - RayID: generates a unique Request ID (RayID) for every incoming request
//     and stores it in the request locals, so diagnostic logs emitted by
//     handlers can be correlated.
//
// These middleware components are registered globally in the root command.
package middleware
