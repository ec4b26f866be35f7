// Package version provides the process-wide reload counter.
//
// The counter is bumped by the file watcher on every change under the source
// directory and read by the /hot endpoint. Browsers compare the value they saw
// on first load with the current one and reload when they differ.
//
// # Wraparound
//
// Values wrap at 2^16. After 65,536 changes the counter reads the same value
// again; a client polling at that exact moment would miss one reload. This is
// acceptable for interactive editing.
package version
