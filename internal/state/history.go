package state

import "time"

// History is the weekly completion histogram, one bucket per weekday,
// indexed by time.Weekday. Buckets never reset.
type History [7]int

// PerformanceDatum is one labelled bucket, as charted.
type PerformanceDatum struct {
	Date           string
	CompletedCount int
}

// chartOrder is the display order of the buckets.
var chartOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeekdayLabel returns the three letter label of d, e.g. "Mon".
func WeekdayLabel(d time.Weekday) string {
	return d.String()[:3]
}

func (h History) Count(d time.Weekday) int { return h[d] }

func (h History) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Datums returns the buckets labelled and ordered Mon..Sun.
func (h History) Datums() []PerformanceDatum {
	out := make([]PerformanceDatum, 0, len(chartOrder))
	for _, d := range chartOrder {
		out = append(out, PerformanceDatum{Date: WeekdayLabel(d), CompletedCount: h[d]})
	}
	return out
}

func (h *History) record(at time.Time) {
	h[at.Weekday()]++
}
