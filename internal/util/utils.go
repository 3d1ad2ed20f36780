package util

import "cpu-scheduler/internal/responses"

func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	if len(processDetails) == 0 {
		return
	}

	var waitingTimeSum int
	var responseTimeSum int
	var turnAroundTimeSum int

	for _, process := range processDetails {
		waitingTimeSum += process.WaitingTime
		responseTimeSum += process.ResponseTime
		turnAroundTimeSum += process.TurnAroundTime
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageResponseTime = float64(responseTimeSum) / processCount
	averageTimeAroundTime = float64(turnAroundTimeSum) / processCount
	return
}
