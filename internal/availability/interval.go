package availability

import (
	"time"

	"github.com/gearbase/gearbase/internal/model"
)

// bufferDayOffset shifts a job's nominal window to model load and return
// time: gear is considered in use from one day before pickup through one day
// before the stated end. Fixed policy, not configurable per call.
const bufferDayOffset = -1

// day is the spacing between enumerated day instants.
const day = 24 * time.Hour

// Range is a closed time interval [Start, End].
type Range struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the two ranges share any duration. Strict on both
// ends: ranges that merely touch at an endpoint do not overlap. Symmetric.
func (r Range) Overlaps(o Range) bool {
	return r.Start.Before(o.End) && r.End.After(o.Start)
}

// Contains reports whether t falls inside the range, endpoints included.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days returns the ordered day-start instants from r.Start to r.End
// inclusive, at 24h spacing. An inverted range yields nil.
func (r Range) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.Add(day) {
		days = append(days, d)
	}
	return days
}

// BufferedRange is the window during which a job's gear is considered in
// use: midnight of the start day through the last instant of the end day,
// both shifted by the load/return buffer.
func BufferedRange(j model.Job) Range {
	return Range{
		Start: dayStart(j.StartTime).AddDate(0, 0, bufferDayOffset),
		End:   dayEnd(j.EndTime).AddDate(0, 0, bufferDayOffset),
	}
}

// JobsOverlapping filters jobs to those whose buffered range overlaps r.
func JobsOverlapping(jobs []model.Job, r Range) []model.Job {
	var out []model.Job
	for _, j := range jobs {
		if BufferedRange(j).Overlaps(r) {
			out = append(out, j)
		}
	}
	return out
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
