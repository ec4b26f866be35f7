// Package server holds the HTTP server configuration and construction helpers.
//
// The server always binds 127.0.0.1; only the port is configurable. The source
// directory and the open-browser switch live here too because they are part of
// the same startup configuration.
//
// # Usage
//
//	root, err := cfg.Server.SourceRoot()
//	ln, err := server.Listen(cfg.Server)
//	app := server.NewApp(logger)
//	err = app.Listener(ln)
package server
