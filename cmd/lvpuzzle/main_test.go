package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpuzzle/dijkstra"
	"github.com/katalvlaran/lvpuzzle/internal/config"
)

// setup resets the command globals and returns a command writing to a buffer.
func setup(t *testing.T, selected int) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cfg = config.DefaultConfig()
	cfg.Inputs = config.InputsConfig{
		Springs:  filepath.Join("testdata", "springs.txt"),
		Crucible: filepath.Join("testdata", "crucible.txt"),
		Bricks:   filepath.Join("testdata", "bricks.txt"),
	}
	logger = zap.NewNop()
	part = selected
	minRun, maxRun = 0, 0
	t.Cleanup(func() {
		part = 0
		minRun, maxRun = 0, 0
	})

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	return cmd, &out
}

func TestRunSprings(t *testing.T) {
	cmd, out := setup(t, 0)
	require.NoError(t, runSprings(cmd, nil))
	assert.Equal(t, "21\n525152\n", out.String())
}

func TestRunCrucible(t *testing.T) {
	cmd, out := setup(t, 0)
	require.NoError(t, runCrucible(cmd, nil))
	assert.Equal(t, "102\n94\n", out.String())

	cmd, out = setup(t, 2)
	require.NoError(t, runCrucible(cmd, []string{filepath.Join("testdata", "crucible.txt")}))
	assert.Equal(t, "94\n", out.String())
}

func TestRunCrucible_CustomWindow(t *testing.T) {
	cmd, out := setup(t, 0)
	minRun, maxRun = 4, 10
	require.NoError(t, runCrucible(cmd, nil))
	assert.Equal(t, "94\n", out.String())

	cmd, _ = setup(t, 0)
	minRun = 2
	assert.Error(t, runCrucible(cmd, nil))

	cmd, _ = setup(t, 0)
	minRun, maxRun = 5, 2
	assert.ErrorIs(t, runCrucible(cmd, nil), dijkstra.ErrBadRunBounds)
}

func TestRunBricks(t *testing.T) {
	cmd, out := setup(t, 0)
	require.NoError(t, runBricks(cmd, nil))
	assert.Equal(t, "5\n7\n", out.String())

	cmd, out = setup(t, 1)
	require.NoError(t, runBricks(cmd, nil))
	assert.Equal(t, "5\n", out.String())
}

func TestMissingInput(t *testing.T) {
	cmd, _ := setup(t, 0)
	err := runBricks(cmd, []string{filepath.Join(t.TempDir(), "none.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input")
}

func TestRootCommand(t *testing.T) {
	setup(t, 0)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
		"--part", "2",
		"bricks", filepath.Join("testdata", "bricks.txt"),
	})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "7\n", out.String())

	rootCmd.SetArgs([]string{"--part", "3", "springs", filepath.Join("testdata", "springs.txt")})
	assert.Error(t, rootCmd.Execute())
}
