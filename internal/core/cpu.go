package core

import "fmt"

type State int

const (
	Ready State = iota
	Running
	Blocked
	Finished
	// Downgraded marks a process leaving its mlfq level after exhausting
	// the quantum. It never survives past the tick that set it.
	Downgraded
)

func (s State) String() string {
	switch s {
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Blocked:
		return "BLOCKED"
	case Finished:
		return "FINISHED"
	case Downgraded:
		return "DOWNGRADED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Process is the runtime record of one workload instance. It is mutated only
// by the engine that owns it and is read-only once Finished.
type Process struct {
	Name string

	workload   Workload
	BurstIndex int
	Remaining  int
	State      State
	// Level is the mlfq priority, 1 being the highest. Zero outside mlfq.
	Level int

	dispatched    bool
	FirstDispatch int
	DispatchStart int

	ResponseTime   int
	WaitTime       int
	TurnaroundTime int
	FinishTime     int
}

func NewProcess(w Workload) *Process {
	return &Process{
		Name:      w.Name,
		workload:  w,
		Remaining: w.Burst(0),
		State:     Ready,
	}
}

func (p *Process) Workload() Workload {
	return p.workload
}

func (p *Process) Arrival() int {
	return p.workload.Arrival
}

func (p *Process) HasResponded() bool {
	return p.dispatched
}

// Advance performs the burst-boundary transition. The caller has already
// decremented Remaining for this tick.
func (p *Process) Advance() {
	if p.Remaining > 0 {
		return
	}
	p.BurstIndex++
	if p.BurstIndex >= p.workload.BurstCount() {
		p.State = Finished
		p.Remaining = 0
		return
	}
	p.Remaining = p.workload.Burst(p.BurstIndex)
	if IsCPUBurst(p.BurstIndex) {
		p.State = Ready
	} else {
		p.State = Blocked
	}
}

// Tick consumes one tick of the active burst.
func (p *Process) Tick() {
	if p.Remaining <= 0 || p.State == Finished {
		panic(fmt.Sprintf("core: tick on inactive process %s (state %s, remaining %d)", p.Name, p.State, p.Remaining))
	}
	p.Remaining--
	p.Advance()
}

// Dispatch moves a ready process into the running slot at tick.
func (p *Process) Dispatch(tick int) {
	if p.State != Ready {
		panic(fmt.Sprintf("core: dispatch of %s in state %s", p.Name, p.State))
	}
	if !IsCPUBurst(p.BurstIndex) {
		panic(fmt.Sprintf("core: dispatch of %s on i/o burst %d", p.Name, p.BurstIndex))
	}
	p.State = Running
	p.DispatchStart = tick
	if !p.dispatched {
		p.dispatched = true
		p.FirstDispatch = tick
		p.ResponseTime = tick - p.workload.Arrival
	}
}

// Preempt returns a running process to the ready state without consuming its
// burst.
func (p *Process) Preempt() {
	if p.State != Running {
		panic(fmt.Sprintf("core: preempt of %s in state %s", p.Name, p.State))
	}
	p.State = Ready
}

// Downgrade drops a running process one priority level. The process stays
// Downgraded until Requeue puts it back in a ready queue.
func (p *Process) Downgrade() {
	if p.State != Running {
		panic(fmt.Sprintf("core: downgrade of %s in state %s", p.Name, p.State))
	}
	p.State = Downgraded
	p.Level++
}

func (p *Process) Requeue() {
	if p.State != Downgraded {
		panic(fmt.Sprintf("core: requeue of %s in state %s", p.Name, p.State))
	}
	p.State = Ready
}

// Complete archives the timing statistics of a finished process; finish is
// the tick boundary at which its last burst ended.
func (p *Process) Complete(finish int) {
	if p.State != Finished {
		panic(fmt.Sprintf("core: complete of %s in state %s", p.Name, p.State))
	}
	p.FinishTime = finish
	p.TurnaroundTime = finish - p.workload.Arrival
	p.WaitTime = p.TurnaroundTime - p.workload.TotalCPUTime()
}

func (p *Process) String() string {
	return fmt.Sprintf("%s[%s b%d r%d]", p.Name, p.State, p.BurstIndex, p.Remaining)
}

// CpuMetric summarises one simulation run in ticks.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime) * 100
}
