package domain

import "strings"

// ParseTickers splits a comma-separated ticker list. Entries are kept as
// given: no trimming, no dedup, order preserved.
func ParseTickers(raw string) []string {
	return strings.Split(raw, ",")
}
