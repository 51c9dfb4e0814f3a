package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("ZOGRASCOPE_MAX_FILE_SIZE_BYTES")
	os.Unsetenv("ZOGRASCOPE_REFINE_TIMEOUT_MS")
	os.Unsetenv("ZOGRASCOPE_MAX_WALK_DEPTH")
	os.Unsetenv("ZOGRASCOPE_DIFF_SIMILARITY_FLOOR")

	cfg := Load()
	require.Equal(t, 5*1024*1024, cfg.MaxFileSizeBytes)
	require.Equal(t, 2000, cfg.RefineTimeoutMS)
	require.Equal(t, 0, cfg.MaxWalkDepth)
	require.Equal(t, 0.2, cfg.DiffSimilarityFloor)
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("ZOGRASCOPE_MAX_FILE_SIZE_BYTES", "1024")
	t.Setenv("ZOGRASCOPE_DIFF_SIMILARITY_FLOOR", "0.5")

	cfg := Load()
	require.Equal(t, 1024, cfg.MaxFileSizeBytes)
	require.Equal(t, 0.5, cfg.DiffSimilarityFloor)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("ZOGRASCOPE_MAX_FILE_SIZE_BYTES", "not-a-number")
	cfg := Load()
	require.Equal(t, 5*1024*1024, cfg.MaxFileSizeBytes)
}
