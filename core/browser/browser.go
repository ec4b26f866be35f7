package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Command returns the program and arguments that open url in the default
// browser on goos.
func Command(goos, url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return "xdg-open", []string{url}, nil
	default:
		return "", nil, fmt.Errorf("cannot open a browser on %s", goos)
	}
}

// Open launches the default browser at url without waiting for it to exit.
func Open(url string) error {
	name, args, err := Command(runtime.GOOS, url)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	// Reap the launcher in the background.
	go func() { _ = cmd.Wait() }()
	return nil
}
