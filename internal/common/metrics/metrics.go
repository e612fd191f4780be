// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	AssessmentsBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_assessments_built_total",
			Help: "Total number of career assessments produced",
		},
		[]string{"experience_level"},
	)

	SkillsExtracted = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "career_skills_extracted",
			Help:    "Number of skills extracted per resume",
			Buckets: []float64{0, 2, 5, 10, 20, 40},
		},
	)

	GapAnalysisHours = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "career_gap_total_hours",
			Help:    "Total estimated learning hours per gap analysis",
			Buckets: []float64{0, 50, 100, 250, 500, 1000},
		},
		[]string{"target_role"},
	)
)
