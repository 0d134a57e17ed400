// SPDX-License-Identifier: MIT

// Package metrics records build statistics on a private Prometheus registry.
//
// A Recorder is created per CLI run; nothing is registered globally, so
// several recorders never collide. WriteSummary gathers the registry and
// prints one line per sample; WriteText renders the same families in the
// Prometheus text exposition format.
package metrics

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvtopo/collapse"
)

const namespace = "lvtopo"

// Recorder owns the registry and the lvtopo collectors.
type Recorder struct {
	reg *prometheus.Registry

	simplices    *prometheus.GaugeVec
	duration     *prometheus.HistogramVec
	builds       *prometheus.CounterVec
	collapsed    prometheus.Counter
	edgesRemoved prometheus.Counter
	contractions prometheus.Counter
}

// New returns a Recorder with every collector registered.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		simplices: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "simplices",
			Help:      "Simplices in the last built complex, by builder and dimension.",
		}, []string{"builder", "dimension"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Wall time of complex construction.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"builder"}),
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Builds by builder and status.",
		}, []string{"builder", "status"}),
		collapsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collapsed_vertices_total",
			Help:      "Vertices removed by strong collapse.",
		}),
		edgesRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collapsed_edges_total",
			Help:      "Edges removed by strong collapse.",
		}),
		contractions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contractions_total",
			Help:      "Edges contracted by simplification.",
		}),
	}
	r.reg.MustRegister(r.simplices, r.duration, r.builds, r.collapsed, r.edgesRemoved, r.contractions)

	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveBuild records a successful build with its per-dimension counts.
func (r *Recorder) ObserveBuild(builder string, perDimension []int, d time.Duration) {
	for dim, n := range perDimension {
		r.simplices.WithLabelValues(builder, strconv.Itoa(dim)).Set(float64(n))
	}
	r.duration.WithLabelValues(builder).Observe(d.Seconds())
	r.builds.WithLabelValues(builder, "ok").Inc()
}

// ObserveFailure records a failed build.
func (r *Recorder) ObserveFailure(builder string) {
	r.builds.WithLabelValues(builder, "error").Inc()
}

// ObserveCollapse records the outcome of a strong collapse.
func (r *Recorder) ObserveCollapse(res collapse.Result) {
	r.collapsed.Add(float64(res.Removed()))
	r.edgesRemoved.Add(float64(res.EdgesBefore - res.EdgesAfter))
	r.duration.WithLabelValues("collapse").Observe(res.Duration.Seconds())
	r.builds.WithLabelValues("collapse", "ok").Inc()
}

// ObserveContractions records n edge contractions.
func (r *Recorder) ObserveContractions(n int) {
	r.contractions.Add(float64(n))
}

// WriteSummary prints "name{labels} value" lines, sorted. Histograms
// contribute their _count and _sum.
func (r *Recorder) WriteSummary(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name, labels := mf.GetName(), formatLabels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				lines = append(lines, sample(name, labels, m.GetCounter().GetValue()))
			case dto.MetricType_GAUGE:
				lines = append(lines, sample(name, labels, m.GetGauge().GetValue()))
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				lines = append(lines,
					sample(name+"_count", labels, float64(h.GetSampleCount())),
					sample(name+"_sum", labels, h.GetSampleSum()))
			}
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}

// WriteText writes every gathered family in the text exposition format,
// HELP and TYPE lines included, in registry (name) order.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s=%q", p.GetName(), p.GetValue())
	}

	return "{" + strings.Join(parts, ",") + "}"
}

func sample(name, labels string, v float64) string {
	return name + labels + " " + strconv.FormatFloat(v, 'g', -1, 64)
}
