// Package logger provides structured logging utilities built on Go's standard slog package.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/inky/core/logger"
//
//	log := logger.New(
//		logger.WithDevelopment("inky"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("template converted",
//		logger.Path("welcome.html"),
//		logger.Count("components", 12),
//	)
//
// # Environment Configurations
//
//	// Development: text format, debug level
//	devLogger := logger.New(logger.WithDevelopment("inky"))
//
//	// Production: JSON format, info level
//	prodLogger := logger.New(logger.WithProduction("inky"))
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil errors and empty strings. slog
// skips empty attributes, so the helpers are safe to pass unconditionally:
//
//	log.Error("render failed", logger.Tag(tag), logger.Error(err))
package logger
