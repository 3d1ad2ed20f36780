package schedulers

import (
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/workloads"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	logger, _ := logtest.NewNullLogger()
	return logger
}

func newMLFQ(t *testing.T) *MultilevelFeedbackQueue {
	t.Helper()
	m, err := NewMultilevelFeedbackQueue(DefaultTimeQuantumList)
	require.NoError(t, err)
	m.Logger = quietLogger()
	return m
}

func newSJF() *ShortestJobFirst {
	s := NewShortestJobFirst()
	s.Logger = quietLogger()
	return s
}

func byName(result Result) map[string]*core.Process {
	m := make(map[string]*core.Process, len(result.Processes))
	for _, p := range result.Processes {
		m[p.Name] = p
	}
	return m
}

func eventsOf(result Result, kind EventKind) []Event {
	var out []Event
	for _, e := range result.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// workloadSets are shared by the property tests of both engines.
func workloadSets() map[string][]core.Workload {
	return map[string][]core.Workload{
		"default":  workloads.Default(),
		"random 1": workloads.Random(1, 6),
		"random 2": workloads.Random(42, 12),
		"random 3": workloads.Random(7, 3),
		"single":   {core.MustWorkload("S", 0, 20)},
		"late":     {core.MustWorkload("L", 9, 3, 4, 2)},
		"trailing io": {
			core.MustWorkload("X", 0, 3, 4),
			core.MustWorkload("Y", 0, 2, 1, 2, 6),
			core.MustWorkload("Z", 1, 9),
		},
	}
}

// assertFinishedSet checks the statistics every run must satisfy.
func assertFinishedSet(t *testing.T, workloads []core.Workload, result Result) {
	t.Helper()
	ass := assert.New(t)
	require.Len(t, result.Processes, len(workloads))

	totalCPU := 0
	lastFinish := 0
	for i, p := range result.Processes {
		w := workloads[i]
		ass.Equal(w.Name, p.Name)
		ass.Equal(core.Finished, p.State)
		ass.Equal(w.BurstCount(), p.BurstIndex)
		ass.True(p.HasResponded())
		ass.GreaterOrEqual(p.FirstDispatch, w.Arrival)
		ass.LessOrEqual(p.FirstDispatch, p.FinishTime)
		ass.LessOrEqual(p.ResponseTime, p.TurnaroundTime)
		ass.GreaterOrEqual(p.WaitTime, 0)
		ass.Equal(p.FinishTime-w.Arrival, p.TurnaroundTime)
		ass.Equal(p.TurnaroundTime-w.TotalCPUTime(), p.WaitTime)
		totalCPU += w.TotalCPUTime()
		if p.FinishTime > lastFinish {
			lastFinish = p.FinishTime
		}
	}
	ass.Equal(lastFinish, result.Metric.TotalTime)
	ass.Equal(totalCPU, result.Metric.UtilizationTime)
	ass.Equal(result.Metric.TotalTime-totalCPU, result.Metric.IdleTime)
}

// assertExclusiveMembership checks that no process sits in two containers.
func assertExclusiveMembership(t *testing.T, s Snapshot) {
	t.Helper()
	seen := map[string]bool{}
	add := func(e Entry) {
		assert.False(t, seen[e.Name], "tick %d: %s in two containers", s.Tick, e.Name)
		seen[e.Name] = true
	}
	if s.Running != nil {
		add(*s.Running)
	}
	for _, level := range s.Ready {
		for _, e := range level {
			add(e)
		}
	}
	for _, e := range s.Blocked {
		add(e)
	}
}

// assertBurstIndexIncreases follows remaining/burst progress through events.
func assertBurstIndexIncreases(t *testing.T, result Result) {
	t.Helper()
	last := map[string]int{}
	for _, e := range result.Events {
		if e.Kind != EventBlocked && e.Kind != EventUnblocked && e.Kind != EventFinished {
			continue
		}
		last[e.Process]++
	}
	for _, p := range result.Processes {
		assert.Equal(t, p.Workload().BurstCount(), last[p.Name], p.Name)
	}
}
