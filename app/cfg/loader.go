package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Source feed configuration
	FeedURL         string `long:"feed-url" env:"FEED_URL" default:"https://rsshub.app/telegram/channel/ooapps" description:"Source channel feed URL"`
	RefreshInterval int    `long:"refresh-interval" env:"REFRESH_INTERVAL" default:"1800" description:"Feed refresh interval in seconds"`
	Timeout         int    `long:"timeout" env:"TIMEOUT" default:"30" description:"Feed fetch timeout in seconds"`

	// Application configuration
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	DBPath       string `long:"db-path" env:"DB_PATH" default:"./appfree.db" description:"Path to the SQLite database file"`
	RulesFile    string `long:"rules-file" env:"RULES_FILE" description:"Path to a YAML file overriding classification rules (optional)"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"AppFree/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"Asia/Shanghai" description:"Timezone for date labels (e.g., Asia/Shanghai, UTC)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		FeedURL:         raw.FeedURL,
		RefreshInterval: raw.RefreshInterval,
		Timeout:         raw.Timeout,
		Port:            raw.Port,
		DBPath:          raw.DBPath,
		RulesFile:       raw.RulesFile,
		APIAccessKey:    raw.APIAccessKey,
		UserAgent:       raw.UserAgent,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
