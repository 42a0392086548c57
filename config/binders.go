package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DefaultKeys is the sequence inserted by the demo when no keys
// are configured
var DefaultKeys = []int{10, 5, 15, 3, 7, 20, 4, 6}

// LogConfig holds the logging settings
type LogConfig struct {
	Level  string
	Format string
}

// Bind implementation of Binder for LogConfig
func (c *LogConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("log-level", "info", "minimum log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	return nil
}

// Configure implementation of Binder for LogConfig
func (c *LogConfig) Configure(v *viper.Viper) error {
	c.Level = v.GetString("log-level")
	c.Format = v.GetString("log-format")

	if c.Format != "text" && c.Format != "json" {
		return errors.Errorf("unknown log format %q", c.Format)
	}

	return nil
}

// KeysConfig holds the keys the tree is seeded with
type KeysConfig struct {
	Keys []int
}

// Bind implementation of Binder for KeysConfig
func (c *KeysConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	defaults := make([]string, 0, len(DefaultKeys))
	for _, k := range DefaultKeys {
		defaults = append(defaults, strconv.Itoa(k))
	}

	cmd.PersistentFlags().StringSlice("keys", defaults, "comma separated keys inserted into the tree in order")
	return nil
}

// Configure implementation of Binder for KeysConfig
func (c *KeysConfig) Configure(v *viper.Viper) error {
	keys, err := ParseKeys(v.GetStringSlice("keys"))
	if err != nil {
		return err
	}

	c.Keys = keys
	return nil
}

// ParseKeys parses integer keys. Each element may itself hold several
// comma separated keys, which is how they arrive from the environment
func ParseKeys(values []string) ([]int, error) {
	keys := []int{}

	for _, value := range values {
		for _, field := range strings.Split(value, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}

			k, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid key %q", field)
			}
			keys = append(keys, k)
		}
	}

	return keys, nil
}

// HttpConfig holds the settings of the http server
type HttpConfig struct {
	Listen      string
	CorsEnabled bool
	CorsOrigins []string
}

// Bind implementation of Binder for HttpConfig
func (c *HttpConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("http-listen", ":8080", "address the http server listens on")
	cmd.PersistentFlags().Bool("http-cors-enabled", false, "verify cross origin requests")
	cmd.PersistentFlags().StringSlice("http-cors-origins", []string{"*"}, "origins allowed to issue cross origin requests")
	return nil
}

// Configure implementation of Binder for HttpConfig
func (c *HttpConfig) Configure(v *viper.Viper) error {
	c.Listen = v.GetString("http-listen")
	c.CorsEnabled = v.GetBool("http-cors-enabled")
	c.CorsOrigins = v.GetStringSlice("http-cors-origins")
	return nil
}
