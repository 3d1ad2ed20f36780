package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// GenerateResponse derives the per-process and aggregate statistics of a
// finished run. Events are attached only when withEvents is set.
func GenerateResponse(result Result, withEvents bool) responses.ScheduleResponse {
	processDetails := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		processDetails = append(processDetails, generateProcessDetails(p))
	}
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(processDetails)

	var throughput float64
	if result.Metric.TotalTime > 0 {
		throughput = float64(len(result.Processes)) / float64(result.Metric.TotalTime)
	}

	response := responses.ScheduleResponse{
		Algorithm:             result.Algorithm,
		TotalTime:             result.Metric.TotalTime,
		IdleTime:              result.Metric.IdleTime,
		CpuUtilization:        result.Metric.Utilization(),
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               processDetails,
	}
	if withEvents {
		response.Events = make([]responses.EventResponse, 0, len(result.Events))
		for _, e := range result.Events {
			response.Events = append(response.Events, responses.EventResponse{
				Tick:      e.Tick,
				Kind:      string(e.Kind),
				Process:   e.Process,
				Level:     e.Level,
				Remaining: e.Remaining,
			})
		}
	}
	return response
}

func generateProcessDetails(p *core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		Name:           p.Name,
		ArrivalTime:    p.Arrival(),
		CpuTime:        p.Workload().TotalCPUTime(),
		ResponseTime:   p.ResponseTime,
		WaitingTime:    p.WaitTime,
		TurnAroundTime: p.TurnaroundTime,
		FinishTime:     p.FinishTime,
	}
}
