// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use and
// uses the caarlos0/env library for parsing environment variables into struct
// fields.
//
// Basic usage:
//
//	import (
//		"github.com/dmitrymomot/inky/core/config"
//		"github.com/dmitrymomot/inky/core/inky"
//	)
//
//	func main() {
//		var cfg inky.Config
//		config.MustLoad(&cfg)
//
//		converter, err := inky.NewFromConfig(cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process. Different types are
// cached independently, so packages can declare their own config structs.
package config
