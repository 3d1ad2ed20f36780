package core

import (
	"errors"
	"fmt"
)

var ErrInvalidWorkload = errors.New("invalid workload")

// Workload is the immutable description of one simulated process.
// Bursts alternate CPU, I/O, CPU, ... so an even index is always a CPU burst.
// The sequence starts with a cpu burst and may end with either kind.
type Workload struct {
	Name    string
	Arrival int
	bursts  []int
}

func NewWorkload(name string, arrival int, bursts []int) (Workload, error) {
	if name == "" {
		return Workload{}, fmt.Errorf("%w: empty name", ErrInvalidWorkload)
	}
	if arrival < 0 {
		return Workload{}, fmt.Errorf("%w: %s: negative arrival %d", ErrInvalidWorkload, name, arrival)
	}
	if len(bursts) == 0 {
		return Workload{}, fmt.Errorf("%w: %s: no bursts", ErrInvalidWorkload, name)
	}
	for i, b := range bursts {
		if b <= 0 {
			return Workload{}, fmt.Errorf("%w: %s: burst %d has non-positive length %d", ErrInvalidWorkload, name, i, b)
		}
	}

	copied := make([]int, len(bursts))
	copy(copied, bursts)
	return Workload{Name: name, Arrival: arrival, bursts: copied}, nil
}

// MustWorkload is NewWorkload for static tables; it panics on invalid input.
func MustWorkload(name string, arrival int, bursts ...int) Workload {
	w, err := NewWorkload(name, arrival, bursts)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Workload) BurstCount() int {
	return len(w.bursts)
}

func (w Workload) Burst(i int) int {
	return w.bursts[i]
}

// Bursts returns a copy of the burst sequence.
func (w Workload) Bursts() []int {
	copied := make([]int, len(w.bursts))
	copy(copied, w.bursts)
	return copied
}

// TotalCPUTime sums the even-indexed bursts.
func (w Workload) TotalCPUTime() int {
	total := 0
	for i := 0; i < len(w.bursts); i += 2 {
		total += w.bursts[i]
	}
	return total
}

func IsCPUBurst(index int) bool {
	return index%2 == 0
}
