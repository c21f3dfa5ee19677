package container

import "time"

// Options holds the CLI/environment configuration for both binaries.
type Options struct {
	Port          int           `default:"8888"                  help:"Port to listen on"                                     short:"p"`
	BaseURL       string        `default:"http://localhost:8888" help:"Public base URL used in generated short links"`
	DefaultLocale string        `default:"ku"                    help:"Locale substituted when a link carries an unknown one"`
	RedisAddr     string        `default:"localhost:6379"        help:"Redis server address"                                  short:"r"`
	PostgresDSN   string        `default:""                      help:"PostgreSQL DSN; empty runs on the seeded in-memory catalog"`
	CacheTTL      time.Duration `default:"1h"                    help:"TTL for cached short link rows; 0 disables the cache"`
	LookupTimeout time.Duration `default:"500ms"                 help:"Per-tier article lookup timeout during resolution"`
	LogFormat     string        `default:"console"               help:"Log format: console or json"`
}
