// Package access implements the per-request log line.
//
// Every request produces exactly one line such as
//
//	14:03:27 200 0.412ms /index.html
//
// Status codes are colored by class: 2xx green, 1xx and 3xx yellow, 4xx and
// 5xx red. Coloring is turned off automatically when the output is not a
// terminal.
package access
