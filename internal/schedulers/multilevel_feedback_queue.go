package schedulers

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"

	log "github.com/sirupsen/logrus"
)

var ErrInvalidQuantum = errors.New("invalid time quantum")

// DefaultTimeQuantumList gives three levels: round robin with 7 and 14 ticks,
// then an unlimited fcfs level.
var DefaultTimeQuantumList = []int{7, 14}

// MultilevelFeedbackQueue has one fifo ready queue per level. Level i < n uses
// timeQuantumList[i-1]; the last level has no quantum. A process that uses up
// its quantum without ending its burst drops one level, and a non-empty higher
// level always preempts a lower one.
type MultilevelFeedbackQueue struct {
	Logger log.FieldLogger
	Trace  TraceHook

	timeQuantumList []int
}

func NewMultilevelFeedbackQueue(timeQuantumList []int) (*MultilevelFeedbackQueue, error) {
	if len(timeQuantumList) == 0 {
		return nil, fmt.Errorf("%w: at least one quantum is required", ErrInvalidQuantum)
	}
	for i, q := range timeQuantumList {
		if q <= 0 {
			return nil, fmt.Errorf("%w: level %d quantum %d", ErrInvalidQuantum, i+1, q)
		}
	}
	quanta := make([]int, len(timeQuantumList))
	copy(quanta, timeQuantumList)
	return &MultilevelFeedbackQueue{timeQuantumList: quanta}, nil
}

func (m *MultilevelFeedbackQueue) Name() string {
	return "mlfq"
}

func (m *MultilevelFeedbackQueue) Levels() int {
	return len(m.timeQuantumList) + 1
}

func (m *MultilevelFeedbackQueue) Run(workloads []core.Workload) Result {
	sim := newSimulation(m.Name(), workloads, m.Logger, m.Trace)
	sim.logger.WithField("timeQuantum", m.timeQuantumList).Info("running mlfq algorithm")

	run := &mlfqRun{simulation: sim, timeQuantumList: m.timeQuantumList}
	for i := 0; i < m.Levels(); i++ {
		run.levels = append(run.levels, core.NewProcessQueue())
	}
	var running *core.Process
	done := len(workloads) == 0
	for !done {
		running, _, done = run.step(running)
	}
	return sim.result()
}

type mlfqRun struct {
	*simulation
	levels          []*core.ProcessQueue
	timeQuantumList []int
}

func (r *mlfqRun) step(running *core.Process) (*core.Process, []Event, bool) {
	mark := len(r.events)
	for _, p := range r.arrivals() {
		p.Level = 1
		r.levels[0].AddToEnd(p)
	}
	if r.trace != nil {
		r.trace(snapshotOf(r.tick, running, r.levels, r.io))
	}

	// a downgrade costs no tick, so selection runs again on the same tick
	for {
		running = r.selectNext(running)
		if running == nil || !r.expired(running) {
			break
		}
		running.Downgrade()
		r.record(r.tick, EventDowngraded, running)
		running.Requeue()
		r.levels[running.Level-1].AddToEnd(running)
		running = nil
	}

	if running != nil {
		running.Tick()
		r.busy++
	}

	for _, p := range r.io.IoExecute() {
		switch p.State {
		case core.Ready:
			r.record(r.tick+1, EventUnblocked, p)
			r.levels[p.Level-1].AddToEnd(p)
		case core.Finished:
			r.complete(p)
		}
	}

	if running != nil {
		switch running.State {
		case core.Running:
		case core.Blocked:
			r.record(r.tick+1, EventBlocked, running)
			r.io.Submit(running)
			running = nil
		case core.Ready:
			r.levels[running.Level-1].AddToEnd(running)
			running = nil
		case core.Finished:
			r.complete(running)
			running = nil
		}
	}

	r.tick++
	return running, r.events[mark:], running == nil && r.readyEmpty() && r.idle()
}

// selectNext dispatches from the highest non-empty level, preempting the
// running process only when that level is strictly higher than its own.
func (r *mlfqRun) selectNext(running *core.Process) *core.Process {
	for i, q := range r.levels {
		if q.Empty() {
			continue
		}
		level := i + 1
		if running != nil && running.Level <= level {
			return running
		}
		if running != nil {
			running.Preempt()
			r.record(r.tick, EventPreempted, running)
			r.levels[running.Level-1].AddToEnd(running)
		}
		p, _ := q.RemoveFromTop()
		p.Level = level
		p.Dispatch(r.tick)
		r.record(r.tick, EventDispatched, p)
		return p
	}
	return running
}

func (r *mlfqRun) quantum(level int) int {
	if level > len(r.timeQuantumList) {
		return 0
	}
	return r.timeQuantumList[level-1]
}

func (r *mlfqRun) expired(p *core.Process) bool {
	q := r.quantum(p.Level)
	return q > 0 && r.tick-p.DispatchStart >= q
}

func (r *mlfqRun) readyEmpty() bool {
	for _, q := range r.levels {
		if !q.Empty() {
			return false
		}
	}
	return true
}
