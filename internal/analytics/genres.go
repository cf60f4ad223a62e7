package analytics

import (
	"sort"

	"showlens/pkg/contracts/domain"
)

// RatingByGenre groups the shows by primary genre and computes the
// arithmetic mean rating per group. The result is ordered by mean rating
// descending; ties break on genre name ascending so the output is
// reproducible across runs.
func RatingByGenre(shows []domain.Show) []domain.GenreRating {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, s := range shows {
		genre := s.PrimaryGenre()
		sums[genre] += s.Rating
		counts[genre]++
	}

	out := make([]domain.GenreRating, 0, len(sums))
	for genre, sum := range sums {
		out = append(out, domain.GenreRating{
			Genre:      genre,
			MeanRating: sum / float64(counts[genre]),
			Count:      counts[genre],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanRating != out[j].MeanRating {
			return out[i].MeanRating > out[j].MeanRating
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}

// GenreFrequency counts shows per primary genre, ordered by descending
// frequency; ties break on genre name ascending.
func GenreFrequency(shows []domain.Show) []domain.GenreCount {
	counts := make(map[string]int)
	for _, s := range shows {
		counts[s.PrimaryGenre()]++
	}

	out := make([]domain.GenreCount, 0, len(counts))
	for genre, n := range counts {
		out = append(out, domain.GenreCount{Genre: genre, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}
