// Package reload provides the live-reload signal.
//
// The Service watches the source directory recursively and counts change
// events. The count is exposed at /hot; the Snippet, appended to served HTML
// pages, polls that endpoint and reloads the page when the number changes.
//
// # HTTP Endpoints
//
//   - GET /hot : current version as a decimal string (text/plain).
//
// The /hot route shadows any file named "hot" at the top of the source
// directory.
package reload
