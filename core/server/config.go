package server

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
)

// Host is the only interface the server binds to.
const Host = "127.0.0.1"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the TCP port to listen on. 0 picks a free port.
	Port uint16 `mapstructure:"port" default:"8080"`
	// Open launches the default browser once the server is listening.
	Open bool `mapstructure:"open" default:"false"`
	// Dir is the source directory to serve and watch.
	Dir string `mapstructure:"dir" default:"."`
}

// Address returns the loopback listen address.
func (c Config) Address() string {
	return net.JoinHostPort(Host, strconv.Itoa(int(c.Port)))
}

// URL returns the address browsers should open.
func (c Config) URL() string {
	return "http://" + c.Address()
}

// SourceRoot returns Dir as an absolute path, verifying that it is a directory.
func (c Config) SourceRoot() (string, error) {
	dir := c.Dir
	if dir == "" {
		dir = "."
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve source directory: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("source directory %s is not a directory", abs)
	}

	return abs, nil
}
