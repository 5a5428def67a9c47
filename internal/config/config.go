// Package config loads the miniart configuration.
//
// Configuration comes from three layers, later ones winning: defaults in
// code, an optional TOML file, and environment variables. Command-line flags
// are applied on top by the CLI.
//
//	[server]
//	addr = ":8070"
//	sanitize = true
//
//	[cache]
//	backend = "redis"          # none, file or redis
//	redis_url = "redis://localhost:6379/0"
//	ttl = "24h"
//
//	[gallery]
//	title = "mini-art-bw (SSR + Shadow DOM)"
//	random_count = 6
//
//	[[gallery.tiles]]
//	seed = "3"
//	size = "280px"
//	animate = true
package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/miniart/pkg/art"
	"github.com/matzehuels/miniart/pkg/cache"
	apperr "github.com/matzehuels/miniart/pkg/errors"
	"github.com/matzehuels/miniart/pkg/pipeline"
)

// DefaultPort is the listen port when neither the file nor the environment
// names one.
const DefaultPort = "8070"

// Environment variables read by [Load].
const (
	EnvPort     = "PORT"
	EnvAddr     = "MINIART_ADDR"
	EnvRedisURL = "MINIART_REDIS_URL"
)

// Cache backends.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config is the complete miniart configuration.
type Config struct {
	Server  Server  `toml:"server"`
	Cache   Cache   `toml:"cache"`
	Gallery Gallery `toml:"gallery"`
}

// Server configures the HTTP listener.
type Server struct {
	Addr string `toml:"addr"`

	// Sanitize drops query values that could break out of the generated
	// stylesheet before rendering.
	Sanitize bool `toml:"sanitize"`

	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	IdleTimeout     Duration `toml:"idle_timeout"`
	RequestTimeout  Duration `toml:"request_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// Cache configures the render cache.
type Cache struct {
	Backend  string   `toml:"backend"`
	Dir      string   `toml:"dir"`       // file backend; empty uses the CLI cache dir
	RedisURL string   `toml:"redis_url"` // redis backend
	Prefix   string   `toml:"prefix"`    // key prefix for shared backends
	TTL      Duration `toml:"ttl"`
}

// Gallery configures the gallery page.
type Gallery struct {
	Title       string           `toml:"title"`
	TileSize    string           `toml:"tile_size"` // size of random tiles
	RandomCount int              `toml:"random_count"`
	MaxRandom   int              `toml:"max_random"`
	Tiles       []map[string]any `toml:"tiles"` // replaces the canonical tiles when set
}

// Duration is a time.Duration that decodes from strings such as "15s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr:            ":" + DefaultPort,
			Sanitize:        true,
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{15 * time.Second},
			IdleTimeout:     Duration{60 * time.Second},
			RequestTimeout:  Duration{30 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
		},
		Cache: Cache{
			Backend: BackendFile,
			TTL:     Duration{cache.TTLTile},
		},
		Gallery: Gallery{
			Title:       pipeline.DefaultTitle,
			TileSize:    pipeline.DefaultTileSize,
			RandomCount: pipeline.DefaultRandomCount,
			MaxRandom:   pipeline.DefaultMaxRandom,
		},
	}
}

// Load reads the configuration file at path (skipped when path is empty),
// applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config file not found: %s", path)
			}
			return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "parse config %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, apperr.New(apperr.ErrCodeInvalidConfig, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}
	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides file values with the environment. MINIART_ADDR wins
// over PORT; a redis URL in the environment selects the redis backend.
func (c *Config) applyEnv(getenv func(string) string) {
	if port := getenv(EnvPort); port != "" {
		c.Server.Addr = ":" + port
	}
	if addr := getenv(EnvAddr); addr != "" {
		c.Server.Addr = addr
	}
	if url := getenv(EnvRedisURL); url != "" {
		c.Cache.RedisURL = url
		c.Cache.Backend = BackendRedis
	}
}

// Validate checks the configuration for values the server cannot use.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return apperr.New(apperr.ErrCodeInvalidConfig, "server.addr cannot be empty")
	}
	switch c.Cache.Backend {
	case BackendNone, BackendFile:
	case BackendRedis:
		if c.Cache.RedisURL == "" {
			return apperr.New(apperr.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return apperr.New(apperr.ErrCodeInvalidConfig, "cache.backend: %q (must be one of: none, file, redis)", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "cache.ttl cannot be negative")
	}
	if c.Gallery.MaxRandom < 1 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "gallery.max_random must be positive")
	}
	if err := apperr.ValidateCount("gallery.random_count", c.Gallery.RandomCount, c.Gallery.MaxRandom); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "gallery.random_count")
	}
	if c.Gallery.TileSize != "" {
		if err := apperr.ValidateLength("gallery.tile_size", c.Gallery.TileSize); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "gallery.tile_size")
		}
	}
	for i, tile := range c.Gallery.Tiles {
		if err := validateTile(tile); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "gallery.tiles[%d]", i)
		}
	}
	return nil
}

func validateTile(tile map[string]any) error {
	for k, v := range tile {
		if !art.IsKey(k) {
			return fmt.Errorf("unknown key %q", k)
		}
		switch v.(type) {
		case string:
		case bool:
			if k != art.KeyAnimate {
				return fmt.Errorf("%s must be a string", k)
			}
		default:
			return fmt.Errorf("%s: unsupported value type %T", k, v)
		}
	}
	return art.Validate(art.Attrs(tile))
}

// CanonicalTiles returns the configured gallery tiles, or nil to use the
// built-in ones.
func (g Gallery) CanonicalTiles() []art.Attrs {
	if len(g.Tiles) == 0 {
		return nil
	}
	out := make([]art.Attrs, len(g.Tiles))
	for i, t := range g.Tiles {
		out[i] = art.Attrs(t)
	}
	return out
}

// Open creates the configured cache. defaultDir is used by the file backend
// when no dir is configured.
func (c Cache) Open(ctx context.Context, defaultDir string) (cache.Cache, error) {
	switch c.Backend {
	case BackendFile:
		dir := c.Dir
		if dir == "" {
			dir = defaultDir
		}
		if dir == "" {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	case BackendRedis:
		return cache.NewRedisCacheFromURL(ctx, c.RedisURL)
	default:
		return cache.NewNullCache(), nil
	}
}

// Keyer returns the cache keyer, scoped when a prefix is configured.
func (c Cache) Keyer() cache.Keyer {
	k := cache.NewDefaultKeyer()
	if c.Prefix != "" {
		return cache.NewScopedKeyer(k, c.Prefix)
	}
	return k
}
