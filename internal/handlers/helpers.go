package handlers

// clampDate truncates an incoming date to ISO YYYY-MM-DD; the frontend
// occasionally sends full timestamps.
func clampDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
