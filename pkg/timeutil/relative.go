package timeutil

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "January 2, 2006"

// Relative renders a post timestamp the way the feed displays it: a zero
// time is "Recently", anything within a month is a coarse "ago" phrase,
// and older dates fall back to a plain date.
func Relative(t, now time.Time) string {
	if t.IsZero() {
		return "Recently"
	}

	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))

	switch {
	case days <= 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		weeks := days / 7
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	default:
		return t.Format(dateLayout)
	}
}
