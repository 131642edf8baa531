// Package metrics exposes lightweight runtime instrumentation used by the
// verbose CLI output and the HTTP server.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading. Transform buffers
// dominate the heap for large degrees, so HeapAlloc is the number the CLI
// reports after a comparison run.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// Delta returns the difference between a later snapshot and this one.
// GC counters are monotonic so the subtraction is safe; heap gauges may
// shrink, in which case the delta saturates at zero.
func (s MemorySnapshot) Delta(later MemorySnapshot) MemorySnapshot {
	return MemorySnapshot{
		HeapAlloc:    saturatingSub(later.HeapAlloc, s.HeapAlloc),
		HeapSys:      saturatingSub(later.HeapSys, s.HeapSys),
		Sys:          saturatingSub(later.Sys, s.Sys),
		NumGC:        later.NumGC - s.NumGC,
		PauseTotalNs: later.PauseTotalNs - s.PauseTotalNs,
		HeapObjects:  saturatingSub(later.HeapObjects, s.HeapObjects),
	}
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
