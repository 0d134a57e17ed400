// SPDX-License-Identifier: MIT

package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/collapse"
	"github.com/katalvlaran/lvtopo/internal/metrics"
)

func TestRecorder_ObserveBuild(t *testing.T) {
	r := metrics.New()
	r.ObserveBuild("alpha", []int{4, 5, 2}, 20*time.Millisecond)
	r.ObserveFailure("witness")

	n, err := testutil.GatherAndCount(r.Registry(), "lvtopo_simplices")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = testutil.GatherAndCount(r.Registry(), "lvtopo_builds_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var b strings.Builder
	require.NoError(t, r.WriteSummary(&b))
	out := b.String()
	assert.Contains(t, out, `lvtopo_simplices{builder="alpha",dimension="0"} 4`)
	assert.Contains(t, out, `lvtopo_simplices{builder="alpha",dimension="2"} 2`)
	assert.Contains(t, out, `lvtopo_build_duration_seconds_count{builder="alpha"} 1`)
	assert.Contains(t, out, `lvtopo_build_duration_seconds_sum{builder="alpha"} 0.02`)
	assert.Contains(t, out, `lvtopo_builds_total{builder="witness",status="error"} 1`)
}

func TestRecorder_ObserveCollapse(t *testing.T) {
	r := metrics.New()
	r.ObserveCollapse(collapse.Result{VerticesBefore: 10, VerticesAfter: 3, EdgesBefore: 20, EdgesAfter: 2})
	r.ObserveContractions(4)

	var b strings.Builder
	require.NoError(t, r.WriteSummary(&b))
	out := b.String()
	assert.Contains(t, out, "lvtopo_collapsed_vertices_total 7\n")
	assert.Contains(t, out, "lvtopo_collapsed_edges_total 18\n")
	assert.Contains(t, out, "lvtopo_contractions_total 4\n")
	assert.Contains(t, out, `lvtopo_builds_total{builder="collapse",status="ok"} 1`)
}

func TestRecorder_Independent(t *testing.T) {
	a, b := metrics.New(), metrics.New()
	a.ObserveContractions(1)

	var sb strings.Builder
	require.NoError(t, b.WriteSummary(&sb))
	assert.Contains(t, sb.String(), "lvtopo_contractions_total 0\n")
}

func TestRecorder_WriteText(t *testing.T) {
	r := metrics.New()
	r.ObserveBuild("alpha", []int{4, 5, 2}, 20*time.Millisecond)
	r.ObserveContractions(3)

	var b strings.Builder
	require.NoError(t, r.WriteText(&b))
	out := b.String()
	assert.Contains(t, out, "# TYPE lvtopo_simplices gauge\n")
	assert.Contains(t, out, "# TYPE lvtopo_build_duration_seconds histogram\n")
	assert.Contains(t, out, `lvtopo_simplices{builder="alpha",dimension="1"} 5`)
	assert.Contains(t, out, `lvtopo_build_duration_seconds_bucket{builder="alpha",le="+Inf"} 1`)
	assert.Contains(t, out, "lvtopo_contractions_total 3\n")

	families, err := r.Registry().Gather()
	require.NoError(t, err)
	assert.Equal(t, len(families), strings.Count(out, "# TYPE "), "one TYPE line per family")
}

func TestWriteSummary_Sorted(t *testing.T) {
	r := metrics.New()
	r.ObserveBuild("witness", []int{3}, time.Millisecond)

	var b strings.Builder
	require.NoError(t, r.WriteSummary(&b))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.IsNonDecreasing(t, lines)
}
