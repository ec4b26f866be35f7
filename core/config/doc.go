// Package config provides configuration management for hotserve.
//
// It utilizes Viper for loading configuration from command-line flags,
// environment variables and an optional .env file.
//
// # Precedence
//
//  1. Flags that were set explicitly (--port, --open, --dir, --log-level, --log-format)
//  2. Environment variables prefixed with HOTSERVE_ (HOTSERVE_SERVER_PORT)
//  3. Variables from .env in the working directory
//  4. Struct defaults declared with the `default` tag
//
// # Configuration Structure
//
//   - Server: port, open-browser switch and source directory
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Server.Port)
package config
