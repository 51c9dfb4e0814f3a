// Package config loads zograscope's own runtime tuning knobs from the
// environment, the same env-var idiom (with an optional .env file) its
// teacher uses for its own configuration.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the engine's tunable thresholds and limits. Every field
// has a sensible default; only set the corresponding env var to change
// it.
type Config struct {
	// MaxFileSizeBytes skips comparing a file larger than this, falling
	// back to the whole-file unified diff instead.
	MaxFileSizeBytes int
	// RefineTimeoutMS is loaded from ZOGRASCOPE_REFINE_TIMEOUT_MS. No
	// other package reads it; refinement runs without a time limit.
	RefineTimeoutMS int
	// MaxWalkDepth bounds directory-mode recursion; 0 means unlimited.
	MaxWalkDepth int
	// DiffSimilarityFloor is loaded from ZOGRASCOPE_DIFF_SIMILARITY_FLOOR.
	// No other package reads it; internal/tokendiff uses its own fixed
	// 0.2 cutoff for discarding a token-level diff.
	DiffSimilarityFloor float64
}

// Load reads a .env file from the current directory if present (errors
// are ignored — the file is optional) and then builds a Config from the
// environment, falling back to defaults for anything unset or
// unparseable.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		MaxFileSizeBytes:    5 * 1024 * 1024,
		RefineTimeoutMS:     2000,
		MaxWalkDepth:        0,
		DiffSimilarityFloor: 0.2,
	}

	if v := os.Getenv("ZOGRASCOPE_MAX_FILE_SIZE_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxFileSizeBytes = n
		}
	}
	if v := os.Getenv("ZOGRASCOPE_REFINE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RefineTimeoutMS = n
		}
	}
	if v := os.Getenv("ZOGRASCOPE_MAX_WALK_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxWalkDepth = n
		}
	}
	if v := os.Getenv("ZOGRASCOPE_DIFF_SIMILARITY_FLOOR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.DiffSimilarityFloor = f
		}
	}

	return cfg
}
