package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValidDocument(t *testing.T) {
	cfg, err := Parse([]byte("max_splits: 64\nmin_instances_for_split: 10\nnum_bins: 256\n"))
	require.NoError(t, err)
	require.Equal(t, 64, cfg.MaxSplits)
	require.Equal(t, 10, cfg.MinInstancesForSplit)
	require.Equal(t, 256, cfg.NumBins)
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("max_splits: [this is not an int\n"))
	require.Error(t, err)
}

func TestParseRejectsMissingNumBins(t *testing.T) {
	_, err := Parse([]byte("max_splits: 1\nmin_instances_for_split: 1\n"))
	require.Error(t, err)
}

func TestParseRejectsNegativeMaxSplits(t *testing.T) {
	_, err := Parse([]byte("max_splits: -1\nmin_instances_for_split: 1\nnum_bins: 4\n"))
	require.Error(t, err)
}

func TestLoadWrapsFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/to/config.yml")
	require.Error(t, err)
}
