// Package streak holds the pure date arithmetic behind the adherence
// statistics. Inputs are "YYYY-MM-DD" day keys as stored in habit_logs.
package streak

import (
	"math"
	"time"

	"github.com/rmaldonado/sapo/internal/domain"
)

// Current returns the length of the unbroken run of consecutive days ending
// at the most recent completed day. days must be distinct and sorted most
// recent first, as ListCompletedDays returns them.
//
// The run is found by the date-minus-rank invariant: within an unbroken run,
// day(i) equals day(0) shifted back by i days. Streaks are not expired on
// read; a most recent day before yesterday still reports its full run.
func Current(days []string) int {
	if len(days) == 0 {
		return 0
	}

	head, err := time.Parse(domain.DayLayout, days[0])
	if err != nil {
		return 0
	}

	n := 1
	for i := 1; i < len(days); i++ {
		d, err := time.Parse(domain.DayLayout, days[i])
		if err != nil {
			break
		}
		if !d.Equal(head.AddDate(0, 0, -i)) {
			break
		}
		n++
	}
	return n
}

// Rate returns completed/total as a percentage rounded to the nearest
// integer, or 0 when total is zero.
func Rate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
