package responses

type ProcessResponse struct {
	Name           string `json:"name"`
	ArrivalTime    int    `json:"arrival_time"`
	CpuTime        int    `json:"cpu_time"`
	ResponseTime   int    `json:"response_time"`
	WaitingTime    int    `json:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	FinishTime     int    `json:"finish_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Events                []EventResponse   `json:"events,omitempty"`
}

type EventResponse struct {
	Tick      int    `json:"tick"`
	Kind      string `json:"kind"`
	Process   string `json:"process"`
	Level     int    `json:"level,omitempty"`
	Remaining int    `json:"remaining"`
}
