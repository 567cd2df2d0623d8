package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`
	Feed     FeedConfig     `yaml:"feed" json:"feed" jsonschema:"description=Feed composition configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for external links"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:arenascope.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// ScheduleConfig holds background worker settings
type ScheduleConfig struct {
	MatchInterval time.Duration `yaml:"match_interval" json:"match_interval" jsonschema:"default=1m,description=How often scheduled matches are checked for start"`
	AdInterval    time.Duration `yaml:"ad_interval" json:"ad_interval" jsonschema:"default=5m,description=How often ad scheduling windows are applied"`
	MaxWorkers    int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent workers"`
}

// FeedConfig holds feed composition settings
type FeedConfig struct {
	PostsPerPage    int `yaml:"posts_per_page" json:"posts_per_page" jsonschema:"default=50,minimum=1,description=Posts pulled into one feed page"`
	UpcomingFetched int `yaml:"upcoming_fetched" json:"upcoming_fetched" jsonschema:"default=10,description=Upcoming matches fetched for the quick matches section"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:arenascope.db?cache=shared&mode=rwc"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.MatchInterval == 0 {
		cfg.Schedule.MatchInterval = time.Minute
	}
	if cfg.Schedule.AdInterval == 0 {
		cfg.Schedule.AdInterval = 5 * time.Minute
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}

	// set defaults for feed
	if cfg.Feed.PostsPerPage == 0 {
		cfg.Feed.PostsPerPage = 50
	}
	if cfg.Feed.UpcomingFetched == 0 {
		cfg.Feed.UpcomingFetched = 10
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Schedule.MatchInterval < time.Second {
		return fmt.Errorf("schedule.match_interval must be at least 1 second")
	}
	if cfg.Schedule.AdInterval < time.Second {
		return fmt.Errorf("schedule.ad_interval must be at least 1 second")
	}
	if cfg.Schedule.MaxWorkers < 1 {
		return fmt.Errorf("schedule.max_workers must be at least 1")
	}

	if cfg.Feed.PostsPerPage < 1 {
		return fmt.Errorf("feed.posts_per_page must be at least 1")
	}
	if cfg.Feed.UpcomingFetched < 1 {
		return fmt.Errorf("feed.upcoming_fetched must be at least 1")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetDatabaseConfig returns database configuration
func (c *Config) GetDatabaseConfig() DatabaseConfig {
	return c.Database
}

// GetScheduleConfig returns scheduler configuration
func (c *Config) GetScheduleConfig() ScheduleConfig {
	return c.Schedule
}

// GetFeedConfig returns feed composition configuration
func (c *Config) GetFeedConfig() FeedConfig {
	return c.Feed
}
