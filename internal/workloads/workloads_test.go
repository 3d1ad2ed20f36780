package workloads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	ws := Default()
	assert.Len(t, ws, 9)
	assert.Equal(t, "P1", ws[0].Name)
	assert.Equal(t, 15, ws[0].BurstCount())
	assert.Equal(t, 18+16+19+14+17+19+14+17, ws[0].TotalCPUTime())
	for _, w := range ws {
		assert.Zero(t, w.Arrival)
	}
}

func TestRandomIsSeeded(t *testing.T) {
	assert.Equal(t, Random(3, 10), Random(3, 10))
	assert.NotEqual(t, Random(3, 10), Random(4, 10))

	for _, w := range Random(9, 20) {
		assert.Equal(t, 1, w.BurstCount()%2, w.Name)
		assert.LessOrEqual(t, w.BurstCount(), 2*maxCpuBursts-1)
		assert.LessOrEqual(t, w.Arrival, maxArrival)
		for i, b := range w.Bursts() {
			assert.Positive(t, b, "%s burst %d", w.Name, i)
		}
	}
}
