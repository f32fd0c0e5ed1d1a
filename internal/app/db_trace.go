package app

import "strings"

// Span attributes should stay readable; long statements get cut.
const maxTracedQueryLength = 512

// formatDBQueryForTrace collapses whitespace in a SQL statement so it fits
// on one span attribute line, truncating past maxTracedQueryLength.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
