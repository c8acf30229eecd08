package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setFlags overrides the command-line flags for one test.
func setFlags(t *testing.T, jobs, level string, identity bool) {
	t.Helper()
	oldJobs, oldLevel, oldIdentity := *jobsFlag, *logLevelFlag, *identityFlag
	*jobsFlag, *logLevelFlag, *identityFlag = jobs, level, identity
	t.Cleanup(func() {
		*jobsFlag, *logLevelFlag, *identityFlag = oldJobs, oldLevel, oldIdentity
	})
}

func TestRunDemo(t *testing.T) {
	setFlags(t, "", "info", false)
	var stdout, stderr bytes.Buffer

	require.NoError(t, run(context.Background(), &stdout, &stderr))
	assert.Equal(t, "# readme (waterman-smith-beyer) score=4.4375\n"+
		"CHOCOLATEISTH--EANSWER\n"+
		"     ||||  ||         \n"+
		"-----LATE--THAW-------\n", stdout.String())
	assert.Contains(t, stderr.String(), `"msg":"job done"`)
}

func TestRunJobFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jobs:
  - name: pair
    variant: needleman-wunsch
    s: GATTACA
    t: GATCA
    similarity: {kind: binary, match: 1, mismatch: -1}
    gap: {kind: linear, cost: 1}
`), 0o600))
	setFlags(t, path, "warn", true)
	var stdout, stderr bytes.Buffer

	require.NoError(t, run(context.Background(), &stdout, &stderr))
	assert.Contains(t, stdout.String(), "# pair (needleman-wunsch) score=3\n")
	assert.Empty(t, stderr.String()) // nothing at warn level
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	setFlags(t, "", "loud", false)
	assert.ErrorContains(t, run(context.Background(), &stdout, &stderr), "-log-level")

	setFlags(t, filepath.Join(t.TempDir(), "missing.yaml"), "info", false)
	assert.ErrorIs(t, run(context.Background(), &stdout, &stderr), os.ErrNotExist)
}
