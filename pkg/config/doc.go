// Package config loads typed configuration structs from environment
// variables, with optional `.env` bootstrapping.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for development-time `.env` files. Every
// configuration type is parsed once per process and cached, so concurrent
// consumers always agree on the values.
//
// See Load for usage; Reset exists for tests that vary the environment.
package config
