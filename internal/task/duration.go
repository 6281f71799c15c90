package task

import "fmt"

// FormatMillis renders an elapsed duration in compact form: "350ms" under a
// second, "2.4s" under a minute, "1m12s" beyond. Negative inputs clamp to
// zero.
func FormatMillis(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	switch {
	case ms < 1000:
		return fmt.Sprintf("%dms", ms)
	case ms < 60_000:
		return fmt.Sprintf("%.1fs", float64(ms)/1000)
	default:
		return fmt.Sprintf("%dm%02ds", ms/60_000, ms%60_000/1000)
	}
}
