// Package calendar builds month views from slots. Everything here is derived
// from the slot list on each call; nothing is cached between requests.
package calendar

import (
	"time"

	"ptstudio/internal/slot"
)

type Day struct {
	Date     string          `json:"date"`
	Weekday  string          `json:"weekday"`
	IsPast   bool            `json:"is_past"`
	HasSlots bool            `json:"has_slots"`
	Slots    []slot.SlotView `json:"slots"`
}

type Month struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Days  []Day `json:"days"`
}

// DaysInMonth returns midnight of every day of the month in loc.
func DaysInMonth(year int, month time.Month, loc *time.Location) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := make([]time.Time, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MonthBounds returns [first day, first day of next month) in loc.
func MonthBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return first, first.AddDate(0, 1, 0)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// OnDay keeps the slots starting on the calendar day of day, in day's location.
func OnDay(slots []slot.Slot, day time.Time) []slot.Slot {
	out := []slot.Slot{}
	for _, s := range slots {
		if sameDay(s.StartTime.In(day.Location()), day) {
			out = append(out, s)
		}
	}
	return out
}

// MonthView intersects the days of the month with slots. Slots that already
// started are listed but never offered for booking.
func MonthView(year int, month time.Month, slots []slot.Slot, now time.Time, loc *time.Location) Month {
	view := Month{Year: year, Month: int(month)}
	today := time.Date(now.In(loc).Year(), now.In(loc).Month(), now.In(loc).Day(), 0, 0, 0, 0, loc)

	for _, day := range DaysInMonth(year, month, loc) {
		daySlots := OnDay(slots, day)
		views := make([]slot.SlotView, 0, len(daySlots))
		for _, s := range daySlots {
			v := slot.View(s)
			if !s.StartTime.After(now) {
				v.Action = ""
			}
			views = append(views, v)
		}

		view.Days = append(view.Days, Day{
			Date:     day.Format("2006-01-02"),
			Weekday:  day.Weekday().String(),
			IsPast:   day.Before(today),
			HasSlots: len(views) > 0,
			Slots:    views,
		})
	}
	return view
}
