package schedulers

import (
	"cpu-scheduler/internal/core"

	log "github.com/sirupsen/logrus"
)

// ShortestJobFirst is non-preemptive: the ready process with the shortest
// next cpu burst runs until that burst ends. Ties go to the process that
// entered the ready queue first.
type ShortestJobFirst struct {
	Logger log.FieldLogger
	Trace  TraceHook
}

func NewShortestJobFirst() *ShortestJobFirst {
	return &ShortestJobFirst{}
}

func (s *ShortestJobFirst) Name() string {
	return "sjf"
}

func (s *ShortestJobFirst) Run(workloads []core.Workload) Result {
	sim := newSimulation(s.Name(), workloads, s.Logger, s.Trace)
	sim.logger.WithField("processes", len(workloads)).Info("running sjf algorithm")

	run := &sjfRun{simulation: sim, ready: core.NewProcessQueue()}
	var running *core.Process
	done := len(workloads) == 0
	for !done {
		running, _, done = run.step(running)
	}
	return sim.result()
}

type sjfRun struct {
	*simulation
	ready *core.ProcessQueue
}

// step simulates one tick. It returns the new occupant of the running slot,
// the events of this tick and whether all work is done.
func (r *sjfRun) step(running *core.Process) (*core.Process, []Event, bool) {
	mark := len(r.events)
	for _, p := range r.arrivals() {
		r.ready.AddToEnd(p)
	}
	if r.trace != nil {
		r.trace(snapshotOf(r.tick, running, []*core.ProcessQueue{r.ready}, r.io))
	}

	if running == nil {
		if p, ok := r.ready.RemoveBest(core.ShorterBurst); ok {
			p.Dispatch(r.tick)
			r.record(r.tick, EventDispatched, p)
			running = p
		}
	}

	if running != nil {
		running.Tick()
		r.busy++
	}

	for _, p := range r.io.IoExecute() {
		switch p.State {
		case core.Ready:
			r.record(r.tick+1, EventUnblocked, p)
			r.ready.AddToEnd(p)
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
			r.ready.AddToEnd(running)
			running = nil
		case core.Finished:
			r.complete(running)
			running = nil
		}
	}

	r.tick++
	return running, r.events[mark:], running == nil && r.ready.Empty() && r.idle()
}
