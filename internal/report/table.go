package report

import (
	"fmt"
	"io"
	"strings"

	"cpu-scheduler/internal/responses"

	"github.com/olekukonko/tablewriter"
)

func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteSchedule prints one row per process and the run averages as footer.
func WriteSchedule(w io.Writer, title string, response responses.ScheduleResponse) {
	WriteTitle(w, title)
	_, _ = fmt.Fprintf(w, "Total time units: %d (idle %d)\n", response.TotalTime, response.IdleTime)
	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%%\n\n", response.CpuUtilization)

	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			d.Name,
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.CpuTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival", "CPU", "Response", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}
