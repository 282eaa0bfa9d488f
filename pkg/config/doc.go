// Package config loads typed configuration structs from environment
// variables, with an optional .env bootstrap for local development.
//
// Struct fields are bound with github.com/caarlos0/env tags:
//
//	type StorageConfig struct {
//	    RedisURL  string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//	    Namespace string `env:"STORAGE_NAMESPACE" envDefault:"ghl"`
//	}
//
//	var cfg StorageConfig
//	if err := config.Load(&cfg); err != nil {
//	    // missing required vars or unparsable values
//	}
//
// Load calls godotenv once per process before the first parse, so a .env
// file in the working directory seeds the environment without overriding
// variables that are already set. LoadEnv points that bootstrap at explicit
// files instead.
package config
