package analytics

import (
	"sort"

	"showlens/pkg/contracts/domain"
)

// TopByRating returns the first n shows after a stable sort by rating,
// descending by default or ascending when asked. Equal ratings preserve
// the input order, so the selection is deterministic for a given dataset.
// When the dataset holds fewer than n shows, all of them are returned.
// The input slice is never reordered.
func TopByRating(shows []domain.Show, n int, ascending bool) []domain.Show {
	if n <= 0 {
		return nil
	}

	sorted := make([]domain.Show, len(shows))
	copy(sorted, shows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Rating < sorted[j].Rating
		}
		return sorted[i].Rating > sorted[j].Rating
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
