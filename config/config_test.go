package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harelcain/electiontransfer/config"
	"github.com/harelcain/electiontransfer/transfer"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesSpecDefaults(t *testing.T) {
	c := config.Default()
	require.Equal(t, "convex", c.TransferMethod)
	require.Equal(t, 5000, c.TransferMinFlowThreshold)
	require.False(t, c.TransferIncludeAbstention)
	require.Equal(t, 20000, c.TransferMaxIterations)
	require.Equal(t, 50, c.IrregularityMinValid)
	require.Equal(t, 8.0, c.IrregularityMinScore)
	require.Equal(t, 100, c.IrregularityTopN)
	require.Equal(t, 55.0, c.SimulatorAlpha)
}

func TestResolve_WithOptions(t *testing.T) {
	c := config.Resolve(
		config.WithTransferMethod("nnls"),
		config.WithSimulatorSeed(7),
		config.WithNameOverride("גולס", "ג'וליס"),
	)
	require.Equal(t, "nnls", c.TransferMethod)
	require.Equal(t, int64(7), c.SimulatorSeed)
	require.Equal(t, "ג'וליס", c.AggregationNameOverrides["גולס"])
}

func TestToTransferOptions(t *testing.T) {
	c := config.Resolve(config.WithTransferMethod("closed_form"))
	opts, err := c.ToTransferOptions()
	require.NoError(t, err)
	require.Equal(t, transfer.MethodClosedForm, opts.Method)

	_, err = config.Resolve(config.WithTransferMethod("bogus")).ToTransferOptions()
	require.ErrorIs(t, err, config.ErrUnknownTransferMethod)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("transfer_method: nnls\nsimulator_seed: 42\n"), 0o644))

	c, err := config.LoadYAML(path)
	require.NoError(t, err)
	require.Equal(t, "nnls", c.TransferMethod)
	require.Equal(t, int64(42), c.SimulatorSeed)
	// Unset fields keep their defaults.
	require.Equal(t, 5000, c.TransferMinFlowThreshold)
}

func TestLoadYAML_MissingFile(t *testing.T) {
	_, err := config.LoadYAML("/nonexistent/path.yaml")
	require.Error(t, err)
}
