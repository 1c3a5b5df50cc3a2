package base

// TruncateString truncates a string to maxWidth runes with ellipsis
func TruncateString(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-3]) + "..."
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
