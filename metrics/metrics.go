// Package metrics abstracts the wall-clock and memory sampling that wraps a
// single search invocation, so the search algorithms stay testable without a
// specific profiling facility.
//
// A Meter opens a Span before the search body runs; the caller stops the Span
// on every exit path, including failure. Spans may nest: iterative deepening
// measures each round and the whole run.
//
//	span := meter.Start()
//	defer func() { sample = span.Stop() }()
package metrics

import (
	"runtime"
	"time"
)

// Sample is the measurement taken over one Span.
type Sample struct {
	// Elapsed is the wall-clock duration of the span.
	Elapsed time.Duration

	// PeakMemory is the peak number of heap bytes attributable to the span.
	PeakMemory uint64
}

// Meter starts measurement spans.
type Meter interface {
	Start() Span
}

// Span is an open measurement. Stop must be called exactly once.
type Span interface {
	Stop() Sample
}

// Nop returns a Meter whose samples are always zero.
func Nop() Meter { return nopMeter{} }

type nopMeter struct{}

func (nopMeter) Start() Span { return nopSpan{} }

type nopSpan struct{}

func (nopSpan) Stop() Sample { return Sample{} }

// Runtime returns a Meter backed by time.Now and runtime.ReadMemStats.
//
// PeakMemory is the larger of the live-heap growth seen at Stop and the bytes
// allocated during the span. The latter bounds the transient peak from above
// when the collector ran mid-span, so a run that allocates and drops a large
// frontier is still charged for it.
func Runtime() Meter { return runtimeMeter{now: time.Now} }

type runtimeMeter struct {
	now func() time.Time
}

func (m runtimeMeter) Start() Span {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return &runtimeSpan{
		now:        m.now,
		t0:         m.now(),
		heapAlloc0: ms.HeapAlloc,
		total0:     ms.TotalAlloc,
	}
}

type runtimeSpan struct {
	now        func() time.Time
	t0         time.Time
	heapAlloc0 uint64
	total0     uint64
}

func (s *runtimeSpan) Stop() Sample {
	elapsed := s.now().Sub(s.t0)

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	var growth uint64
	if ms.HeapAlloc > s.heapAlloc0 {
		growth = ms.HeapAlloc - s.heapAlloc0
	}
	allocated := ms.TotalAlloc - s.total0

	return Sample{Elapsed: elapsed, PeakMemory: max(growth, allocated)}
}
