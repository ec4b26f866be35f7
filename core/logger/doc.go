// Package logger provides the structured logging facilities based on Zap.
//
// There are two loggers. The diagnostic logger (New) reports startup,
// shutdown, watcher and handler problems on stderr. The access logger
// (NewAccess) writes exactly one short line per request to stdout.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it
// to the log entry, so diagnostic lines emitted while serving a request can be
// correlated.
//
// # Configuration
//
// The diagnostic logger supports:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started")
//
//	access := logger.NewAccess(zapcore.Lock(os.Stdout))
//	access.Info("200 0.412ms /index.html")
package logger
