package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "farm.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
solver:
  n_op: 3
turbines:
  - name: WT1
    position: [0, 0, 90]
    wind_speed: 10
    wind_direction: 0
`), 0o644))
	chart := filepath.Join(dir, "chain.svg")
	record := filepath.Join(dir, "chain.json")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"init", "--config", config, "--plot", chart, "--record", record, "--log-level", "error"})
	require.NoError(t, root.Execute())

	assert.True(t, strings.HasPrefix(out.String(), "# WT1 FLORIDynOPs4 3\n"))
	assert.Contains(t, out.String(), "2 20 0 90 20\n")
	for _, f := range []string{chart, record} {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestInitCommandNoConfig(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"init"})
	assert.Error(t, root.Execute())
}
