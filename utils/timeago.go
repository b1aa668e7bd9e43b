package utils

import (
	"fmt"
	"time"
)

// MinutesSince is computed from the stored timestamp on every read.
func MinutesSince(t, now time.Time) int {
	if now.Before(t) {
		return 0
	}
	return int(now.Sub(t) / time.Minute)
}

// TimeAgo renders "Just now" under a minute, else "<n>m ago".
func TimeAgo(t, now time.Time) string {
	m := MinutesSince(t, now)
	if m < 1 {
		return "Just now"
	}
	return fmt.Sprintf("%dm ago", m)
}
