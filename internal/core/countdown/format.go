package countdown

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSeconds renders a second count as MM:SS while under an hour and
// HH:MM:SS from one hour up. Every field is zero-padded to two digits.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours == 0 {
		return fmt.Sprintf("%02d:%02d", minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// ParseClock recovers total seconds from a MM:SS or HH:MM:SS string. It is the
// inverse of FormatSeconds within the one-second resolution of the format.
func ParseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("parse clock %q: want MM:SS or HH:MM:SS", value)
	}

	total := 0
	for _, part := range parts {
		field, err := strconv.Atoi(part)
		if err != nil || field < 0 {
			return 0, fmt.Errorf("parse clock %q: bad field %q", value, part)
		}
		total = total*60 + field
	}
	return total, nil
}
