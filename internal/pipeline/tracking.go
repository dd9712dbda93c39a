package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var (
	stageLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dashboard",
		Subsystem: "pipeline",
		Name:      "stage_duration_seconds",
		Help:      "Time spent in each dashboard computation stage.",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"stage"})

	dashboardBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Subsystem: "pipeline",
		Name:      "builds_total",
		Help:      "Dashboard recomputations broken down by whether any filter was active.",
	}, []string{"filtered"})

	tableRows = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "dashboard",
		Subsystem: "table",
		Name:      "rows",
		Help:      "Number of records in the loaded source table.",
	})
)

// StageMetrics records one computation stage of a dashboard build.
type StageMetrics struct {
	Stage    string        `json:"stage"`
	Duration time.Duration `json:"duration"`
	Records  int           `json:"records"`
}

// PipelineTracker times the stages of one dashboard build. It is owned by
// a single build and is not safe for concurrent use.
type PipelineTracker struct {
	start  time.Time
	stages []StageMetrics
	logger logrus.FieldLogger
}

func NewPipelineTracker(logger logrus.FieldLogger) *PipelineTracker {
	if logger == nil {
		logger = discardLogger()
	}
	return &PipelineTracker{start: time.Now(), logger: logger}
}

// StartStage begins timing a stage; call the returned func with the number
// of records the stage produced.
func (pt *PipelineTracker) StartStage(stage string) func(records int) {
	started := time.Now()
	return func(records int) {
		d := time.Since(started)
		stageLatency.WithLabelValues(stage).Observe(d.Seconds())
		pt.stages = append(pt.stages, StageMetrics{Stage: stage, Duration: d, Records: records})
	}
}

// Complete counts the build and logs its stages at debug level.
func (pt *PipelineTracker) Complete(filtered bool) {
	label := "false"
	if filtered {
		label = "true"
	}
	dashboardBuilds.WithLabelValues(label).Inc()

	fields := logrus.Fields{"duration_ms": time.Since(pt.start).Milliseconds()}
	for _, s := range pt.stages {
		fields[s.Stage+"_records"] = s.Records
	}
	pt.logger.WithFields(fields).Debug("dashboard computed")
}

// Stages returns the recorded stages in completion order.
func (pt *PipelineTracker) Stages() []StageMetrics {
	return append([]StageMetrics(nil), pt.stages...)
}
