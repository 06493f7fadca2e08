// SPDX-License-Identifier: MIT

package fit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives one record per public operation.
// Implement it to forward counters to a monitoring system.
type MetricsCollector interface {
	// RecordFit is called after every Fit. evaluations counts model calls.
	RecordFit(duration time.Duration, evaluations int, err error)

	// RecordMesh is called after every EstimateUncertainty. points is the
	// number of mesh points evaluated, contour the number kept in the band.
	RecordMesh(points, contour int, duration time.Duration, err error)
}

// NoopMetricsCollector discards everything.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(time.Duration, int, error)       {}
func (NoopMetricsCollector) RecordMesh(int, int, time.Duration, error) {}

// BasicMetricsCollector keeps in-memory totals. Safe for concurrent use.
type BasicMetricsCollector struct {
	FitCount         atomic.Int64
	FitErrors        atomic.Int64
	FitEvaluations   atomic.Int64
	FitTotalNanos    atomic.Int64
	MeshCount        atomic.Int64
	MeshErrors       atomic.Int64
	MeshPoints       atomic.Int64
	MeshContourHits  atomic.Int64
	MeshEmptyContour atomic.Int64
	MeshTotalNanos   atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(d time.Duration, evaluations int, err error) {
	b.FitCount.Add(1)
	b.FitEvaluations.Add(int64(evaluations))
	b.FitTotalNanos.Add(d.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
	}
}

// RecordMesh implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMesh(points, contour int, d time.Duration, err error) {
	b.MeshCount.Add(1)
	b.MeshPoints.Add(int64(points))
	b.MeshContourHits.Add(int64(contour))
	b.MeshTotalNanos.Add(d.Nanoseconds())
	if err != nil {
		b.MeshErrors.Add(1)
		return
	}
	if contour == 0 {
		b.MeshEmptyContour.Add(1)
	}
}

// Stats is a point-in-time copy of BasicMetricsCollector.
type Stats struct {
	FitCount         int64
	FitErrors        int64
	FitEvaluations   int64
	FitAvgNanos      int64
	MeshCount        int64
	MeshErrors       int64
	MeshPoints       int64
	MeshContourHits  int64
	MeshEmptyContour int64
	MeshAvgNanos     int64
}

// GetStats returns the current totals with averaged latencies.
func (b *BasicMetricsCollector) GetStats() Stats {
	s := Stats{
		FitCount:         b.FitCount.Load(),
		FitErrors:        b.FitErrors.Load(),
		FitEvaluations:   b.FitEvaluations.Load(),
		MeshCount:        b.MeshCount.Load(),
		MeshErrors:       b.MeshErrors.Load(),
		MeshPoints:       b.MeshPoints.Load(),
		MeshContourHits:  b.MeshContourHits.Load(),
		MeshEmptyContour: b.MeshEmptyContour.Load(),
	}
	if s.FitCount > 0 {
		s.FitAvgNanos = b.FitTotalNanos.Load() / s.FitCount
	}
	if s.MeshCount > 0 {
		s.MeshAvgNanos = b.MeshTotalNanos.Load() / s.MeshCount
	}

	return s
}
