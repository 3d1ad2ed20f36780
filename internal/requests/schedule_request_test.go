package requests

import (
	"testing"

	"cpu-scheduler/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRequests_Workloads(t *testing.T) {
	ass := assert.New(t)

	tests := []struct {
		name    string
		jobs    []Job
		wantErr error
		want    []string
	}{
		{
			name: "valid jobs keep order",
			jobs: []Job{
				{Name: "B", Bursts: []int{1, 1, 3}},
				{Name: "A", ArrivalTime: 4, Bursts: []int{4, 2}},
			},
			want: []string{"B", "A"},
		},
		{name: "no jobs", jobs: nil, wantErr: ErrInvalidRequest},
		{
			name: "duplicate names",
			jobs: []Job{
				{Name: "A", Bursts: []int{1}},
				{Name: "A", Bursts: []int{2}},
			},
			wantErr: ErrInvalidRequest,
		},
		{name: "empty bursts", jobs: []Job{{Name: "A"}}, wantErr: core.ErrInvalidWorkload},
		{name: "non-positive burst", jobs: []Job{{Name: "A", Bursts: []int{3, 0, 1}}}, wantErr: core.ErrInvalidWorkload},
		{name: "negative arrival", jobs: []Job{{Name: "A", ArrivalTime: -2, Bursts: []int{3}}}, wantErr: core.ErrInvalidWorkload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := ScheduleRequests{Jobs: tt.jobs}
			got, err := request.Workloads()
			if tt.wantErr != nil {
				ass.ErrorIs(err, tt.wantErr)
				ass.Nil(got)
				return
			}
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, w := range got {
				names = append(names, w.Name)
			}
			ass.Equal(tt.want, names)
		})
	}
}

func TestScheduleRequests_WorkloadsCarryArrivalAndBursts(t *testing.T) {
	request := ScheduleRequests{Jobs: []Job{{Name: "A", ArrivalTime: 4, Bursts: []int{4, 2, 2}}}}
	got, err := request.Workloads()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Arrival)
	assert.Equal(t, []int{4, 2, 2}, got[0].Bursts())
}

func TestFromWorkloadsRoundTrips(t *testing.T) {
	ws := []core.Workload{
		core.MustWorkload("P1", 0, 5, 1, 2),
		core.MustWorkload("P2", 3, 7),
	}
	request := FromWorkloads(ws)
	assert.Equal(t, []Job{
		{Name: "P1", ArrivalTime: 0, Bursts: []int{5, 1, 2}},
		{Name: "P2", ArrivalTime: 3, Bursts: []int{7}},
	}, request.Jobs)

	back, err := request.Workloads()
	require.NoError(t, err)
	assert.Equal(t, ws, back)
}
