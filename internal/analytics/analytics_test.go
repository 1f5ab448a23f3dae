package analytics

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in    string
		want  Window
		weeks int
		err   bool
	}{
		{"1M", Window1M, 4, false},
		{"3m", Window3M, 13, false},
		{"6M", Window6M, 26, false},
		{"all", WindowAll, 0, false},
		{"", Window3M, 13, false},
		{"2W", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, err := ParseWindow(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, ErrInvalidWindow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w)
			assert.Equal(t, tt.weeks, w.Weeks())
		})
	}
}

func TestTrailing(t *testing.T) {
	series := make([]int, 28)
	for i := range series {
		series[i] = i
	}

	assert.Equal(t, []int{24, 25, 26, 27}, Trailing(series, Window1M))
	assert.Len(t, Trailing(series, Window3M), 13)
	assert.Equal(t, 15, Trailing(series, Window3M)[0])
	assert.Len(t, Trailing(series, Window6M), 26)
	assert.Len(t, Trailing(series, WindowAll), 28)
	assert.Equal(t, []int{1, 2, 3}, Trailing([]int{1, 2, 3}, Window1M))
}

func TestWindowSince(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, day(2025, 2, 17), Window1M.Since(now))
	assert.True(t, WindowAll.Since(now).IsZero())
}

func TestWeeklySeries(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	entries := []SetPoint{
		{Exercise: "Squat", PerformedOn: day(2025, 1, 1), WeightKg: 90},
		{Exercise: "Squat", PerformedOn: day(2025, 2, 18), WeightKg: 100},
		{Exercise: "Squat", PerformedOn: day(2025, 2, 20), WeightKg: 105},
		{Exercise: "Bench press", PerformedOn: day(2025, 3, 11), WeightKg: 80},
		{Exercise: "squat", PerformedOn: day(2025, 3, 11), WeightKg: 110},
	}

	series := WeeklySeries(entries, "Squat", 4, now)
	require.Len(t, series, 4)
	assert.Equal(t, day(2025, 2, 17), series[0].WeekStart)
	assert.Equal(t, 105.0, series[0].BestWeightKg)
	assert.Equal(t, 2, series[0].Sets)
	assert.Zero(t, series[1].BestWeightKg)
	assert.Zero(t, series[2].Sets)
	assert.Equal(t, 110.0, series[3].BestWeightKg)
	assert.Equal(t, 11, series[3].Week)

	full := WeeklySeries(entries, "Squat", 0, now)
	require.Len(t, full, 11)
	assert.Equal(t, 2025, full[0].Year)
	assert.Equal(t, 1, full[0].Week)
	assert.Equal(t, 90.0, full[0].BestWeightKg)

	assert.Empty(t, WeeklySeries(entries, "Deadlift", 0, now))
}

func TestExerciseProgress(t *testing.T) {
	entries := []SetPoint{
		{Exercise: "Squat", PerformedOn: day(2025, 1, 20), WeightKg: 60},
		{Exercise: "Squat", PerformedOn: day(2025, 2, 3), WeightKg: 100},
		{Exercise: "Squat", PerformedOn: day(2025, 2, 3), WeightKg: 95},
		{Exercise: "Bench press", PerformedOn: day(2025, 2, 5), WeightKg: 70},
		{Exercise: "Squat", PerformedOn: day(2025, 2, 10), WeightKg: 110},
		{Exercise: "Squat", PerformedOn: day(2025, 2, 10), WeightKg: 105},
	}

	got := ExerciseProgress(entries, day(2025, 2, 1))
	require.Len(t, got, 2)

	assert.Equal(t, Progress{Exercise: "Bench press", MinWeightKg: 70, MaxWeightKg: 70, Change: 0, Sessions: 1, Sets: 1}, got[0])
	assert.Equal(t, Progress{Exercise: "Squat", MinWeightKg: 95, MaxWeightKg: 110, Change: 10, Sessions: 2, Sets: 4}, got[1])

	assert.Empty(t, ExerciseProgress(entries, day(2025, 3, 1)))
}

func TestCalendarDaysWestOfUTC(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, ny)

	entries := []SetPoint{
		{Exercise: "Squat", PerformedOn: day(2025, 2, 17), WeightKg: 90},
		{Exercise: "Squat", PerformedOn: day(2025, 3, 10), WeightKg: 100},
	}

	series := WeeklySeries(entries, "Squat", 4, now)
	require.Len(t, series, 4)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, ny), series[3].WeekStart)
	assert.Equal(t, 100.0, series[3].BestWeightKg)
	assert.Equal(t, 1, series[3].Sets)
	assert.Zero(t, series[2].Sets)
	assert.Equal(t, 90.0, series[0].BestWeightKg)

	since := Window1M.Since(now)
	assert.Equal(t, time.Date(2025, 2, 17, 0, 0, 0, 0, ny), since)

	got := ExerciseProgress(entries, since)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Sessions)
	assert.Equal(t, 10.0, got[0].Change)
}
