package analytics

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var ErrInvalidWindow = errors.New("window must be one of 1M, 3M, 6M, ALL")

type Window string

const (
	Window1M  Window = "1M"
	Window3M  Window = "3M"
	Window6M  Window = "6M"
	WindowAll Window = "ALL"
)

// ParseWindow defaults to 3M when s is empty.
func ParseWindow(s string) (Window, error) {
	switch w := Window(strings.ToUpper(strings.TrimSpace(s))); w {
	case "":
		return Window3M, nil
	case Window1M, Window3M, Window6M, WindowAll:
		return w, nil
	default:
		return "", ErrInvalidWindow
	}
}

// Weeks is the number of trailing weeks the window covers, 0 for ALL.
func (w Window) Weeks() int {
	switch w {
	case Window1M:
		return 4
	case Window3M:
		return 13
	case Window6M:
		return 26
	default:
		return 0
	}
}

// Since is the first instant inside the window, or the zero time for ALL.
func (w Window) Since(now time.Time) time.Time {
	weeks := w.Weeks()
	if weeks == 0 {
		return time.Time{}
	}
	return weekStart(now).AddDate(0, 0, -7*(weeks-1))
}

// Trailing returns the last Weeks() entries of an ordered weekly series.
func Trailing[T any](series []T, w Window) []T {
	n := w.Weeks()
	if n == 0 || n >= len(series) {
		return series
	}
	return series[len(series)-n:]
}

// SetPoint is one logged set with the exercise and day it belongs to.
type SetPoint struct {
	WorkoutID   int       `db:"workout_id" json:"workout_id"`
	Exercise    string    `db:"exercise" json:"exercise"`
	PerformedOn time.Time `db:"performed_on" json:"performed_on"`
	Reps        int       `db:"reps" json:"reps"`
	WeightKg    float64   `db:"weight_kg" json:"weight_kg"`
}

type WeekPoint struct {
	WeekStart    time.Time `json:"week_start"`
	Year         int       `json:"year"`
	Week         int       `json:"week"`
	BestWeightKg float64   `json:"best_weight_kg"`
	Sets         int       `json:"sets"`
}

type Progress struct {
	Exercise    string  `json:"exercise"`
	MinWeightKg float64 `json:"min_weight_kg"`
	MaxWeightKg float64 `json:"max_weight_kg"`
	Change      float64 `json:"change"`
	Sessions    int     `json:"sessions"`
	Sets        int     `json:"sets"`
}

// weekStart is the Monday 00:00 of t's ISO week in t's location.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// calendarDay places the date part of t at midnight in loc. performed_on is
// a DATE and is scanned as midnight UTC.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// WeeklySeries returns the best weight lifted for exercise in each ISO week,
// oldest first, ending with the week containing now. Weeks without sets are
// present with zero values. weeks <= 0 starts from the first logged week.
func WeeklySeries(entries []SetPoint, exercise string, weeks int, now time.Time) []WeekPoint {
	last := weekStart(now)

	matching := make([]SetPoint, 0, len(entries))
	for _, e := range entries {
		if strings.EqualFold(e.Exercise, exercise) {
			matching = append(matching, e)
		}
	}

	var first time.Time
	if weeks > 0 {
		first = last.AddDate(0, 0, -7*(weeks-1))
	} else {
		if len(matching) == 0 {
			return []WeekPoint{}
		}
		first = last
		for _, e := range matching {
			if ws := weekStart(calendarDay(e.PerformedOn, now.Location())); ws.Before(first) {
				first = ws
			}
		}
	}

	series := []WeekPoint{}
	index := map[time.Time]int{}
	for ws := first; !ws.After(last); ws = ws.AddDate(0, 0, 7) {
		year, week := ws.ISOWeek()
		index[ws] = len(series)
		series = append(series, WeekPoint{WeekStart: ws, Year: year, Week: week})
	}

	for _, e := range matching {
		i, ok := index[weekStart(calendarDay(e.PerformedOn, now.Location()))]
		if !ok {
			continue
		}
		p := &series[i]
		p.Sets++
		if e.WeightKg > p.BestWeightKg {
			p.BestWeightKg = e.WeightKg
		}
	}
	return series
}

// ExerciseProgress groups sets performed on or after since by exercise.
// Change is the best weight of the last session minus that of the first.
func ExerciseProgress(entries []SetPoint, since time.Time) []Progress {
	type session struct {
		day  time.Time
		best float64
	}
	type acc struct {
		progress Progress
		sessions map[time.Time]*session
	}

	byExercise := map[string]*acc{}
	for _, e := range entries {
		if calendarDay(e.PerformedOn, since.Location()).Before(since) {
			continue
		}
		a, ok := byExercise[e.Exercise]
		if !ok {
			a = &acc{
				progress: Progress{Exercise: e.Exercise, MinWeightKg: e.WeightKg, MaxWeightKg: e.WeightKg},
				sessions: map[time.Time]*session{},
			}
			byExercise[e.Exercise] = a
		}
		a.progress.Sets++
		a.progress.MinWeightKg = min(a.progress.MinWeightKg, e.WeightKg)
		a.progress.MaxWeightKg = max(a.progress.MaxWeightKg, e.WeightKg)

		y, m, d := e.PerformedOn.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		s, ok := a.sessions[day]
		if !ok {
			s = &session{day: day, best: e.WeightKg}
			a.sessions[day] = s
		}
		s.best = max(s.best, e.WeightKg)
	}

	out := make([]Progress, 0, len(byExercise))
	for _, a := range byExercise {
		var firstS, lastS *session
		for _, s := range a.sessions {
			if firstS == nil || s.day.Before(firstS.day) {
				firstS = s
			}
			if lastS == nil || s.day.After(lastS.day) {
				lastS = s
			}
		}
		a.progress.Sessions = len(a.sessions)
		a.progress.Change = lastS.best - firstS.best
		out = append(out, a.progress)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Exercise < out[j].Exercise })
	return out
}
