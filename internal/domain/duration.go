package domain

import (
	"strconv"
	"strings"
)

// FormatDuration renders minutes as "2h 30m", "1h", "45m" or "0m".
// Negative values get a leading minus sign.
func FormatDuration(minutes int64) string {
	if minutes == 0 {
		return "0m"
	}

	var b strings.Builder
	if minutes < 0 {
		b.WriteByte('-')
		minutes = -minutes
	}

	hours, mins := minutes/60, minutes%60
	if hours > 0 {
		b.WriteString(strconv.FormatInt(hours, 10))
		b.WriteByte('h')
	}
	if mins > 0 {
		if hours > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(mins, 10))
		b.WriteByte('m')
	}
	return b.String()
}
