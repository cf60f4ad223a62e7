package analytics

import (
	"sort"

	"showlens/pkg/contracts/domain"
)

// RatingByYear computes the mean rating per extracted start year over the
// shows whose year falls inside [minYear, maxYear]. Shows without a
// recognizable start year are skipped. Years with no shows in range do not
// appear at all: the trend line carries gaps, not zeros. The result is
// ordered by year ascending.
func RatingByYear(shows []domain.Show, minYear, maxYear int) []domain.YearRating {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, s := range shows {
		year, ok := s.YearStart()
		if !ok || year < minYear || year > maxYear {
			continue
		}
		sums[year] += s.Rating
		counts[year]++
	}

	out := make([]domain.YearRating, 0, len(sums))
	for year, sum := range sums {
		out = append(out, domain.YearRating{
			Year:       year,
			MeanRating: sum / float64(counts[year]),
			Count:      counts[year],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// CountByYearAndGenre builds the year x primary-genre count matrix for the
// heatmap over the same year-filtered subset. The matrix is densified with
// zeros across the genres observed for at least one year in range; genres
// the filtered subset never mentions stay absent. Years and genres are
// sorted ascending.
func CountByYearAndGenre(shows []domain.Show, minYear, maxYear int) domain.YearGenreMatrix {
	counts := make(map[int]map[string]int)
	genreSet := make(map[string]bool)
	for _, s := range shows {
		year, ok := s.YearStart()
		if !ok || year < minYear || year > maxYear {
			continue
		}
		genre := s.PrimaryGenre()
		if counts[year] == nil {
			counts[year] = make(map[string]int)
		}
		counts[year][genre]++
		genreSet[genre] = true
	}

	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	genres := make([]string, 0, len(genreSet))
	for genre := range genreSet {
		genres = append(genres, genre)
	}
	sort.Strings(genres)

	matrix := domain.YearGenreMatrix{Years: years, Genres: genres}
	matrix.Counts = make([][]float64, len(genres))
	for i, genre := range genres {
		row := make([]float64, len(years))
		for j, year := range years {
			row[j] = float64(counts[year][genre])
		}
		matrix.Counts[i] = row
	}
	return matrix
}
