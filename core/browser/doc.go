// Package browser opens URLs in the user's default browser.
//
// Launching is best effort: callers log the returned error and carry on.
package browser
