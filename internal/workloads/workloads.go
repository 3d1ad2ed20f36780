// Package workloads supplies the burst tables fed to the schedulers.
package workloads

import (
	"fmt"

	"cpu-scheduler/internal/core"

	"golang.org/x/exp/rand"
)

// Default returns the nine reference processes P1..P9, all arriving at tick 0.
func Default() []core.Workload {
	return []core.Workload{
		core.MustWorkload("P1", 0, 18, 41, 16, 52, 19, 31, 14, 33, 17, 43, 19, 66, 14, 39, 17),
		core.MustWorkload("P2", 0, 8, 32, 7, 42, 6, 27, 17, 41, 7, 33, 11, 43, 12, 32, 14),
		core.MustWorkload("P3", 0, 6, 51, 5, 53, 6, 46, 9, 32, 11, 52, 4, 61, 8),
		core.MustWorkload("P4", 0, 25, 35, 19, 41, 21, 45, 18, 51, 12, 61, 24, 54, 23, 61, 21),
		core.MustWorkload("P5", 0, 15, 61, 16, 52, 15, 71, 13, 41, 15, 62, 14, 31, 14, 41, 13, 32, 15),
		core.MustWorkload("P6", 0, 6, 25, 5, 31, 6, 32, 5, 41, 4, 81, 8, 39, 11, 42, 5),
		core.MustWorkload("P7", 0, 16, 38, 17, 41, 15, 29, 14, 26, 9, 32, 5, 34, 8, 26, 6, 39, 5),
		core.MustWorkload("P8", 0, 5, 52, 4, 42, 6, 31, 7, 21, 4, 43, 5, 31, 7, 32, 6, 32, 7, 41, 4),
		core.MustWorkload("P9", 0, 11, 37, 12, 41, 6, 41, 4, 48, 6, 41, 5, 29, 4, 26, 5, 31, 3),
	}
}

const (
	maxCpuBursts = 8
	maxCpuBurst  = 30
	maxIoBurst   = 60
	maxArrival   = 20
)

// Random builds count synthetic workloads from seed. The same seed always
// yields the same set.
func Random(seed uint64, count int) []core.Workload {
	r := rand.New(rand.NewSource(seed))
	workloads := make([]core.Workload, 0, count)
	for i := 0; i < count; i++ {
		cpuBursts := 1 + r.Intn(maxCpuBursts)
		bursts := make([]int, 0, 2*cpuBursts-1)
		for j := 0; j < cpuBursts; j++ {
			if j > 0 {
				bursts = append(bursts, 1+r.Intn(maxIoBurst))
			}
			bursts = append(bursts, 1+r.Intn(maxCpuBurst))
		}
		arrival := 0
		if i > 0 {
			arrival = r.Intn(maxArrival + 1)
		}
		workloads = append(workloads, core.MustWorkload(fmt.Sprintf("R%d", i+1), arrival, bursts...))
	}
	return workloads
}
