package ui

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/amonks/devflow/task"
)

// FormatCountdown renders a second count as MM:SS.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// DueLabel describes when t is due relative to now.
func DueLabel(t task.Task, now time.Time) string {
	days, ok := task.DaysUntilDue(t, now)
	if !ok {
		return "-"
	}
	switch {
	case days < 0:
		return fmt.Sprintf("overdue %d %s", -days, plural(-days, "day"))
	case days == 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	case days <= 7:
		return fmt.Sprintf("%d days left", days)
	default:
		return t.DueDate.Format("Jan 2, 2006")
	}
}

// FormatHours renders an optional hour count.
func FormatHours(h *float64) string {
	if h == nil {
		return "-"
	}
	return strconv.FormatFloat(*h, 'f', -1, 64) + "h"
}

// FormatTimeAgo returns a compact age string like "2m ago".
func FormatTimeAgo(then time.Time, now time.Time) string {
	if then.IsZero() {
		return "-"
	}
	return FormatDurationShort(now.Sub(then)) + " ago"
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	seconds := int64(duration.Truncate(time.Second).Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	return fmt.Sprintf("%dd", hours/24)
}

// Bar renders a fixed-width progress bar for a percentage.
func Bar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	percent = min(max(percent, 0), 100)
	filled := int(percent / 100 * float64(width))
	out := make([]byte, 0, width*3)
	for i := 0; i < width; i++ {
		if i < filled {
			out = utf8.AppendRune(out, '█')
		} else {
			out = utf8.AppendRune(out, '░')
		}
	}
	return string(out)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
