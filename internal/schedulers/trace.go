package schedulers

import (
	"cpu-scheduler/internal/core"

	log "github.com/sirupsen/logrus"
)

type EventKind string

const (
	EventArrived    EventKind = "arrived"
	EventDispatched EventKind = "dispatched"
	EventPreempted  EventKind = "preempted"
	EventDowngraded EventKind = "downgraded"
	EventBlocked    EventKind = "blocked"
	EventUnblocked  EventKind = "unblocked"
	EventFinished   EventKind = "finished"
)

// Event records one scheduling side effect. Tick is the tick boundary at which
// it took effect: a burst ending during tick t is reported at t+1.
type Event struct {
	Tick      int       `json:"tick"`
	Kind      EventKind `json:"kind"`
	Process   string    `json:"process"`
	Level     int       `json:"level,omitempty"`
	Remaining int       `json:"remaining"`
}

type Entry struct {
	Name      string `json:"name"`
	Remaining int    `json:"remaining"`
	Level     int    `json:"level,omitempty"`
}

// Snapshot is the engine state at a tick boundary, taken before selection.
// Ready holds one slice per ready container, highest priority first.
type Snapshot struct {
	Tick    int       `json:"tick"`
	Running *Entry    `json:"running"`
	Ready   [][]Entry `json:"ready"`
	Blocked []Entry   `json:"blocked"`
}

// TraceHook observes snapshots. It must not mutate anything it is given.
type TraceHook func(Snapshot)

// LogSnapshots returns a hook writing every snapshot to logger at debug level.
func LogSnapshots(logger log.FieldLogger) TraceHook {
	return func(s Snapshot) {
		fields := log.Fields{
			"tick":    s.Tick,
			"ready":   s.Ready,
			"blocked": s.Blocked,
		}
		if s.Running != nil {
			fields["running"] = s.Running.Name
		}
		logger.WithFields(fields).Debug("snapshot")
	}
}

func entryOf(p *core.Process) Entry {
	return Entry{Name: p.Name, Remaining: p.Remaining, Level: p.Level}
}

func entriesOf(ps []*core.Process) []Entry {
	entries := make([]Entry, 0, len(ps))
	for _, p := range ps {
		entries = append(entries, entryOf(p))
	}
	return entries
}

func snapshotOf(tick int, running *core.Process, ready []*core.ProcessQueue, io *core.IoDevice) Snapshot {
	s := Snapshot{Tick: tick, Blocked: entriesOf(io.Items())}
	if running != nil {
		e := entryOf(running)
		s.Running = &e
	}
	for _, q := range ready {
		s.Ready = append(s.Ready, entriesOf(q.Items()))
	}
	return s
}
