// Package logging provides config-driven categorized logging for the sandbox CLI.
// Each category gets a named child of one zap root logger; categories switched
// off in config get a no-op logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sandbox/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup, config resolution
	CategorySort     Category = "sort"     // Sorting routines
	CategoryCalc     Category = "calc"     // Calculator and accumulator
	CategoryStore    Category = "store"    // History database
	CategoryTutorial Category = "tutorial" // Lesson loading and rendering
)

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	cfg     config.LoggingConfig
	loggers = make(map[Category]*zap.Logger)
)

// ParseLevel maps a config level string to a zap level. Unknown values map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Build constructs a root logger from the logging config. verbose forces debug.
// A relative File is resolved against workspace.
func Build(lc config.LoggingConfig, workspace string, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Format != "json" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zc.DisableStacktrace = true
	zc.Sampling = nil

	level := ParseLevel(lc.Level)
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	if lc.File != "" {
		path := lc.File
		if !filepath.IsAbs(path) && workspace != "" {
			path = filepath.Join(workspace, path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		zc.OutputPaths = append(zc.OutputPaths, path)
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Initialize installs logger as the root and applies the category filter from lc.
// Should be called once at startup.
func Initialize(logger *zap.Logger, lc config.LoggingConfig) {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = zap.NewNop()
	}
	root = logger
	cfg = lc
	loggers = make(map[Category]*zap.Logger)

	root.Named(string(CategoryBoot)).Debug("logging initialized",
		zap.String("level", lc.Level),
		zap.String("format", lc.Format),
		zap.Int("category_overrides", len(lc.Categories)))
}

// Get returns the logger for a category, creating it on first use.
func Get(category Category) *zap.Logger {
	mu.RLock()
	l, ok := loggers[category]
	mu.RUnlock()
	if ok {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}
	if cfg.IsCategoryEnabled(string(category)) {
		l = root.Named(string(category))
	} else {
		l = zap.NewNop()
	}
	loggers[category] = l
	return l
}

// Root returns the root logger.
func Root() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// Sync flushes the root logger. Errors from syncing stderr are ignored.
func Sync() {
	_ = Root().Sync()
}
