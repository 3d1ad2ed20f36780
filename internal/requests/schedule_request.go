package requests

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
)

var ErrInvalidRequest = errors.New("invalid request")

type Job struct {
	Name        string `json:"name"`
	ArrivalTime int    `json:"arrival_time"`
	Bursts      []int  `json:"bursts"`
}

type ScheduleRequests struct {
	Jobs  []Job `json:"jobs"`
	Trace bool  `json:"trace"`
}

// Workloads validates every job and converts it to a workload. Names must be
// unique within one request.
func (r *ScheduleRequests) Workloads() ([]core.Workload, error) {
	if len(r.Jobs) == 0 {
		return nil, fmt.Errorf("%w: no jobs", ErrInvalidRequest)
	}
	seen := make(map[string]bool, len(r.Jobs))
	workloads := make([]core.Workload, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		if seen[job.Name] {
			return nil, fmt.Errorf("%w: duplicate job name %q", ErrInvalidRequest, job.Name)
		}
		seen[job.Name] = true

		w, err := core.NewWorkload(job.Name, job.ArrivalTime, job.Bursts)
		if err != nil {
			return nil, err
		}
		workloads = append(workloads, w)
	}
	return workloads, nil
}

func FromWorkloads(workloads []core.Workload) ScheduleRequests {
	jobs := make([]Job, 0, len(workloads))
	for _, w := range workloads {
		jobs = append(jobs, Job{Name: w.Name, ArrivalTime: w.Arrival, Bursts: w.Bursts()})
	}
	return ScheduleRequests{Jobs: jobs}
}
