package main

import (
	"context"
	"testing"

	"mad-ant/internal/analysis"

	"mad-ant/internal/sims/ant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes("3, 5,8-10")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 8, 9, 10}, sizes)

	for _, list := range []string{"", "0", "a", "4-2", "3-x", "-3"} {
		_, err := parseSizes(list)
		assert.Errorf(t, err, "list %q", list)
	}
}

func TestBuildJobs(t *testing.T) {
	jobs, err := buildJobs("2-3", "canonical,toggle-first")
	require.NoError(t, err)
	require.Len(t, jobs, 4)
	assert.Equal(t, 2, jobs[0].Config.Size)
	assert.Equal(t, ant.RuleCanonical, jobs[0].Config.Rule)
	assert.Equal(t, ant.RuleToggleFirst, jobs[1].Config.Rule)
	assert.Equal(t, 3, jobs[3].Config.Size)

	_, err = buildJobs("2", "spiral")
	require.Error(t, err)
}

func TestFailureMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	jobs, err := buildJobs("32", "canonical")
	require.NoError(t, err)
	_, err = analysis.Sweep(ctx, jobs, 1)
	require.Error(t, err)
	assert.Equal(t, "Sweep interrupted, no results.", failureMessage(err))

	jobs, err = buildJobs("1", "canonical")
	require.NoError(t, err)
	jobs[0].Config.Size = 0
	_, err = analysis.Sweep(context.Background(), jobs, 1)
	require.Error(t, err)
	assert.Contains(t, failureMessage(err), "Sweep failed: job #0")
}
