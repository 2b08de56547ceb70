// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skillgraph/factors"
)

const graphYAML = `
logging:
  level: error
graph:
  variables:
    - {name: alice, mean: 25, stddev: 8.3}
    - {name: bob, mean: 25, stddev: 8.3}
    - {name: team}
    - {name: idle}
  sums:
    - {sum: team, summands: [alice, bob], weights: [1, 1]}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SKILLGRAPH_ENV", filepath.Join(t.TempDir(), "missing.env"))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestPlanCmd(t *testing.T) {
	out, err := execute(t, "plan", "--weights", "1,2")
	require.NoError(t, err)

	assert.Contains(t, out, "PLAN")
	assert.Regexp(t, regexp.MustCompile(`(?m)^0\s+V0\s+\[1 2\]\s+\[1 2\]$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^1\s+V1\s+\[-2 1\]\s+\[2 0\]$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^2\s+V2\s+\[-0.5 0.5\]\s+\[1 0\]$`), out)
}

func TestPlanCmd_Errors(t *testing.T) {
	_, err := execute(t, "plan")
	assert.ErrorContains(t, err, "weights")

	_, err = execute(t, "plan", "--weights", "1,NaN")
	assert.ErrorIs(t, err, factors.ErrInvalidArgument)
}

func TestSolveCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(graphYAML), 0o600))

	out, err := execute(t, "solve", "-c", path, "--evidence")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`(?m)^alice\s+25\.0000\s+8\.3000$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^team\s+50\.0000\s+11\.7380$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^idle\s+-\s+-$`), out)
	assert.Contains(t, out, "log evidence")
}

func TestSolveCmd_Errors(t *testing.T) {
	_, err := execute(t, "solve")
	assert.ErrorContains(t, err, "config")

	_, err = execute(t, "solve", "-c", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestSolveCmd_Team solves the observed team in testdata.
func TestSolveCmd_Team(t *testing.T) {
	out, err := execute(t, "solve", "-c", filepath.Join("testdata", "team.yaml"))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`(?m)^alice\s+28\.9705\s+6\.4449$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^bob\s+28\.9705\s+6\.4449$`), out)
	assert.NotContains(t, out, "log evidence")
}
