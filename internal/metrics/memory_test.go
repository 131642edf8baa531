package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_ReadsRuntimeStats(t *testing.T) {
	snap := NewMemoryCollector().Snapshot()

	assert.Greater(t, snap.HeapAlloc, uint64(0))
	assert.GreaterOrEqual(t, snap.Sys, snap.HeapSys)
	assert.Greater(t, snap.HeapObjects, uint64(0))
}

func TestDelta_ComputesGrowth(t *testing.T) {
	before := MemorySnapshot{HeapAlloc: 100, HeapSys: 1000, Sys: 2000, NumGC: 3, PauseTotalNs: 50, HeapObjects: 10}
	after := MemorySnapshot{HeapAlloc: 250, HeapSys: 1500, Sys: 2600, NumGC: 5, PauseTotalNs: 80, HeapObjects: 17}

	delta := before.Delta(after)

	assert.Equal(t, uint64(150), delta.HeapAlloc)
	assert.Equal(t, uint64(500), delta.HeapSys)
	assert.Equal(t, uint64(600), delta.Sys)
	assert.Equal(t, uint32(2), delta.NumGC)
	assert.Equal(t, uint64(30), delta.PauseTotalNs)
	assert.Equal(t, uint64(7), delta.HeapObjects)
}

func TestDelta_SaturatesWhenHeapShrinks(t *testing.T) {
	before := MemorySnapshot{HeapAlloc: 500, HeapObjects: 40}
	after := MemorySnapshot{HeapAlloc: 100, HeapObjects: 10}

	delta := before.Delta(after)

	assert.Equal(t, uint64(0), delta.HeapAlloc)
	assert.Equal(t, uint64(0), delta.HeapObjects)
}

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, uint64(5), saturatingSub(10, 5))
	assert.Equal(t, uint64(0), saturatingSub(5, 10))
	assert.Equal(t, uint64(0), saturatingSub(7, 7))
}
