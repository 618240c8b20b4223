package services

import "strings"

// SplitClauses segments a transcript on commas, periods, and the literal
// conjunction "and", returning trimmed non-empty clauses in order. Both
// extractors consume the same segmentation.
func SplitClauses(transcript string) []string {
	var clauses []string
	for _, part := range strings.Split(transcript, ",") {
		for _, sub := range strings.Split(part, ".") {
			for _, clause := range strings.Split(sub, " and ") {
				clause = strings.TrimSpace(clause)
				if clause != "" {
					clauses = append(clauses, clause)
				}
			}
		}
	}
	return clauses
}
