// Package config loads the FinSight configuration from the environment,
// an optional .env file and an optional configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type Config struct {
	// HTTP server
	APIURL           string
	Port             string
	GinMode          string
	CORSAllowOrigins []string
	EnablePprof      bool

	// Storage
	DataDir string

	// Logging
	LogFormat string

	// Ledger
	Timezone            string
	RepaymentSessionTTL time.Duration

	// AMQP events, disabled without URL
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

var defaults = map[string]any{
	"PORT":                  "8080",
	"DATA_DIR":              "data",
	"GIN_MODE":              "release",
	"TIMEZONE":              "UTC",
	"REPAYMENT_SESSION_TTL": "12h",
	"AMQP_EXCHANGE":         "finsight",
	"AMQP_QUEUE":            "finsight_events",
}

// Load reads the configuration.
//
// Variables from a .env file in the working directory are added to the
// environment first. Environment variables take precedence over the
// values in the configuration file, if one is given.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env failed: %w", err)
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	for _, key := range []string{"API_URL", "LOG_FORMAT", "CORS_ALLOW_ORIGINS", "ENABLE_PPROF", "AMQP_URL"} {
		_ = v.BindEnv(key)
	}
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s failed: %w", configFile, err)
		}
	}

	ttl, err := time.ParseDuration(v.GetString("REPAYMENT_SESSION_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPAYMENT_SESSION_TTL '%s': %w", v.GetString("REPAYMENT_SESSION_TTL"), err)
	}

	return &Config{
		APIURL:              v.GetString("API_URL"),
		Port:                v.GetString("PORT"),
		GinMode:             v.GetString("GIN_MODE"),
		CORSAllowOrigins:    splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		EnablePprof:         v.GetBool("ENABLE_PPROF"),
		DataDir:             v.GetString("DATA_DIR"),
		LogFormat:           v.GetString("LOG_FORMAT"),
		Timezone:            v.GetString("TIMEZONE"),
		RepaymentSessionTTL: ttl,
		AMQPURL:             v.GetString("AMQP_URL"),
		AMQPExchange:        v.GetString("AMQP_EXCHANGE"),
		AMQPQueue:           v.GetString("AMQP_QUEUE"),
	}, nil
}

// splitList splits a comma or space separated list.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

// Validate returns an error listing all problems of the configuration.
func (c *Config) Validate() error {
	var problems []string

	if c.APIURL == "" {
		problems = append(problems, "API_URL must be set")
	} else if u, err := url.Parse(c.APIURL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid API_URL '%s': %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid API_URL '%s': must start with http:// or https://", c.APIURL))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if modes := []string{"debug", "release", "test"}; !slices.Contains(modes, c.GinMode) {
		problems = append(problems, fmt.Sprintf("invalid gin mode '%s': must be one of %v", c.GinMode, modes))
	}

	if formats := []string{"", "human", "json"}; !slices.Contains(formats, c.LogFormat) {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if c.DataDir == "" {
		problems = append(problems, "DATA_DIR cannot be empty")
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	}

	if c.RepaymentSessionTTL < time.Minute {
		problems = append(problems, fmt.Sprintf("invalid repayment session TTL %v: must be at least 1 minute", c.RepaymentSessionTTL))
	}

	if c.AMQPURL != "" {
		if u, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if u.Scheme != "amqp" && u.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", u.Scheme))
		}

		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}

		if c.AMQPQueue == "" {
			problems = append(problems, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// URL returns the parsed API URL.
func (c *Config) URL() (*url.URL, error) {
	return url.Parse(c.APIURL)
}

// Location returns the time zone of the ledger.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// DatabasePath returns the path of the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "finsight.db")
}
