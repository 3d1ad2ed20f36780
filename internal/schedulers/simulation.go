package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"

	log "github.com/sirupsen/logrus"
)

// Scheduler runs one discipline over a workload set to completion.
type Scheduler interface {
	Name() string
	Run(workloads []core.Workload) Result
}

// Result is the finished set of one run. Processes keep the input order.
type Result struct {
	Algorithm string
	Processes []*core.Process
	Metric    core.CpuMetric
	Events    []Event
}

// simulation is the state owned by a single run: the tick counter, the
// processes that have not arrived yet, the blocked set and the finished set.
type simulation struct {
	algorithm string
	logger    log.FieldLogger
	trace     TraceHook

	tick      int
	processes []*core.Process
	pending   []*core.Process
	io        *core.IoDevice
	finished  []*core.Process
	busy      int
	events    []Event
}

func newSimulation(algorithm string, workloads []core.Workload, logger log.FieldLogger, trace TraceHook) *simulation {
	if logger == nil {
		logger = log.StandardLogger()
	}
	s := &simulation{
		algorithm: algorithm,
		logger:    logger.WithField("algorithm", algorithm),
		trace:     trace,
		io:        core.NewIoDevice(),
	}
	for _, w := range workloads {
		s.processes = append(s.processes, core.NewProcess(w))
	}
	s.pending = make([]*core.Process, len(s.processes))
	copy(s.pending, s.processes)
	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].Arrival() < s.pending[j].Arrival()
	})
	return s
}

// arrivals pops every pending process due at the current tick.
func (s *simulation) arrivals() []*core.Process {
	n := 0
	for n < len(s.pending) && s.pending[n].Arrival() <= s.tick {
		n++
	}
	arrived := s.pending[:n]
	s.pending = s.pending[n:]
	for _, p := range arrived {
		s.record(s.tick, EventArrived, p)
	}
	return arrived
}

func (s *simulation) record(tick int, kind EventKind, p *core.Process) {
	s.events = append(s.events, Event{
		Tick:      tick,
		Kind:      kind,
		Process:   p.Name,
		Level:     p.Level,
		Remaining: p.Remaining,
	})
	s.logger.WithFields(log.Fields{
		"pid":       p.Name,
		"tick":      tick,
		"level":     p.Level,
		"remaining": p.Remaining,
	}).Debug(string(kind))
}

func (s *simulation) complete(p *core.Process) {
	finish := s.tick + 1
	p.Complete(finish)
	s.finished = append(s.finished, p)
	s.record(finish, EventFinished, p)
}

func (s *simulation) idle() bool {
	return len(s.pending) == 0 && s.io.Empty()
}

func (s *simulation) result() Result {
	if len(s.finished) != len(s.processes) {
		panic("schedulers: run ended with unfinished processes")
	}
	metric := core.CpuMetric{
		TotalTime:       s.tick,
		UtilizationTime: s.busy,
		IdleTime:        s.tick - s.busy,
	}
	s.logger.WithFields(log.Fields{
		"ticks":       metric.TotalTime,
		"utilization": metric.Utilization(),
		"processes":   len(s.processes),
	}).Info("simulation finished")
	return Result{
		Algorithm: s.algorithm,
		Processes: s.processes,
		Metric:    metric,
		Events:    s.events,
	}
}
