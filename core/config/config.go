package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"hotserve/core/logger"
	"hotserve/core/server"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment variables (HOTSERVE_SERVER_PORT).
const EnvPrefix = "HOTSERVE"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server and the source directory.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the diagnostic logger.
	Log logger.Config `mapstructure:"log"`
}

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"port":       "server.port",
	"open":       "server.open",
	"dir":        "server.dir",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// RegisterFlags defines the command-line flags understood by LoadConfig.
// Their defaults mirror the struct defaults; viper only reads flags that were
// set explicitly.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolP("open", "o", false, "open the default browser at the server URL after startup")
	flags.Uint16P("port", "p", 8080, "TCP port to listen on (127.0.0.1 only)")
	flags.StringP("dir", "d", ".", "source directory to serve and watch")
	flags.String("log-level", "info", "diagnostic log level (debug, info, warn, error)")
	flags.String("log-format", "console", "diagnostic log format (console, json)")
}

// LoadConfig loads configuration from flags, environment variables and the
// .env file in path, in that order of precedence. flags may be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	// Ignore error if file doesn't exist
	_ = godotenv.Load(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. HOTSERVE_SERVER_PORT -> server.port)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
