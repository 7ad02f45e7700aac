// Package config holds the engine's runtime settings: request defaults,
// cache sizing, and the index oracle endpoint, loaded via viper the way
// the rest of the example pack's CLIs load theirs.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the engine's runtime configuration.
type Settings struct {
	// DefaultLimit is the reply truncation applied when a request omits
	// options.limit (spec §6).
	DefaultLimit int

	// DefaultMaxDistance is the per-request Levenshtein ceiling applied
	// when a request omits options.max_distance (spec §6).
	DefaultMaxDistance int

	// CacheCapacity is the advisory size cap of the ResultCache (spec
	// §4.9).
	CacheCapacity int

	// CacheTTLSeconds is the lifetime of a cached reply (spec §4.9).
	CacheTTLSeconds int

	// MeilisearchHost and MeilisearchAPIKey configure the production
	// Oracle.
	MeilisearchHost   string
	MeilisearchAPIKey string

	// SynonymsPath, when set, is the gob file the engine loads synonyms
	// from at startup and persists them to on every SetSynonyms call.
	SynonymsPath string
}

// Default returns the engine's built-in defaults, grounded on the named
// constants of the system this module re-implements.
func Default() Settings {
	return Settings{
		DefaultLimit:       10,
		DefaultMaxDistance: 4,
		CacheCapacity:      1000,
		CacheTTLSeconds:    3600,
		MeilisearchHost:    "http://localhost:7700",
	}
}

// Load reads settings from the given config file (if non-empty) and from
// FRRERANK_-prefixed environment variables, falling back to Default for
// anything unset.
func Load(configPath string) (Settings, error) {
	s := Default()

	v := viper.New()
	v.SetEnvPrefix("frrerank")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("default_limit", s.DefaultLimit)
	v.SetDefault("default_max_distance", s.DefaultMaxDistance)
	v.SetDefault("cache_capacity", s.CacheCapacity)
	v.SetDefault("cache_ttl_seconds", s.CacheTTLSeconds)
	v.SetDefault("meilisearch_host", s.MeilisearchHost)
	v.SetDefault("meilisearch_api_key", s.MeilisearchAPIKey)
	v.SetDefault("synonyms_path", s.SynonymsPath)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, err
		}
	}

	s.DefaultLimit = v.GetInt("default_limit")
	s.DefaultMaxDistance = v.GetInt("default_max_distance")
	s.CacheCapacity = v.GetInt("cache_capacity")
	s.CacheTTLSeconds = v.GetInt("cache_ttl_seconds")
	s.MeilisearchHost = v.GetString("meilisearch_host")
	s.MeilisearchAPIKey = v.GetString("meilisearch_api_key")
	s.SynonymsPath = v.GetString("synonyms_path")

	return s, nil
}
