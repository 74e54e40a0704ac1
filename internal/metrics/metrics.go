// Package metrics records ranking-run metrics with Prometheus collectors and
// writes them in the text exposition format for the node exporter textfile
// collector.
package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Metrics holds the collectors of one ranking run.
type Metrics struct {
	registry *prometheus.Registry

	CandidatesScored  prometheus.Counter
	CandidatesSkipped *prometheus.CounterVec
	RelevanceScore    prometheus.Histogram
	TopScore          prometheus.Gauge
	SelfScore         prometheus.Gauge
	RunDuration       prometheus.Gauge
	LastRunTimestamp  prometheus.Gauge
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		CandidatesScored: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "resume_ranker_candidates_scored_total",
				Help: "Number of resumes scored against the job description.",
			},
		),
		CandidatesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_ranker_candidates_skipped_total",
				Help: "Directory entries left out of the ranking, by reason.",
			},
			[]string{"reason"},
		),
		RelevanceScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "resume_ranker_relevance_score",
				Help:    "Distribution of candidate relevance scores (0-100).",
				Buckets: prometheus.LinearBuckets(10, 10, 10),
			},
		),
		TopScore: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "resume_ranker_top_score",
				Help: "Relevance score of the best ranked candidate.",
			},
		),
		SelfScore: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "resume_ranker_self_score",
				Help: "Score of the job description against itself (-1 when not checked).",
			},
		),
		RunDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "resume_ranker_run_duration_seconds",
				Help: "Wall-clock duration of the ranking run.",
			},
		),
		LastRunTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "resume_ranker_last_run_timestamp_seconds",
				Help: "Unix time at which the last ranking run finished.",
			},
		),
	}

	m.registry.MustRegister(
		m.CandidatesScored,
		m.CandidatesSkipped,
		m.RelevanceScore,
		m.TopScore,
		m.SelfScore,
		m.RunDuration,
		m.LastRunTimestamp,
	)
	m.SelfScore.Set(-1)

	return m
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveReport records the outcome of a finished run.
func (m *Metrics) ObserveReport(report *types.RankedCandidates, elapsed time.Duration) {
	if report == nil {
		return
	}

	for _, c := range report.Ranked {
		m.CandidatesScored.Inc()
		m.RelevanceScore.Observe(c.RelevanceScore)
	}
	if len(report.Ranked) > 0 {
		m.TopScore.Set(report.Ranked[0].RelevanceScore)
	}
	for _, s := range report.Skipped {
		m.CandidatesSkipped.WithLabelValues(reasonLabel(s.Reason)).Inc()
	}
	if report.SelfScore != nil {
		m.SelfScore.Set(*report.SelfScore)
	}

	m.RunDuration.Set(elapsed.Seconds())
	m.LastRunTimestamp.SetToCurrentTime()
}

// WriteToTextfile atomically writes all metrics to path.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// reasonLabel keeps label cardinality bounded: "extraction failed: <detail>"
// becomes "extraction_failed".
func reasonLabel(reason string) string {
	kind, _, _ := strings.Cut(reason, ":")
	return strings.ReplaceAll(strings.TrimSpace(kind), " ", "_")
}
