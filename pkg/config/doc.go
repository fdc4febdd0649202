// Package config loads application configuration from environment
// variables into tagged structs.
//
// It wraps github.com/joho/godotenv, which reads an optional .env file once
// per process, and github.com/caarlos0/env/v11, which maps variables onto
// struct fields. Load caches each struct type after the first successful
// parse; Parse skips the cache. Structs that implement Validator are checked
// after parsing and fail with ErrInvalidConfig.
//
//	var cfg app.Config
//	config.MustLoad(&cfg)
//
// Use Reset between tests that change the environment.
package config
