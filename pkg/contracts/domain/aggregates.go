package domain

// GenreRating is one row of the rating-by-genre aggregation: the mean
// rating over every show whose primary genre matches Genre.
type GenreRating struct {
	Genre      string  `json:"genre" csv:"Genre"`
	MeanRating float64 `json:"mean_rating" csv:"MeanRating"`
	Count      int     `json:"count" csv:"Count"`
}

// GenreCount is one row of the primary-genre frequency count.
type GenreCount struct {
	Genre string `json:"genre" csv:"Genre"`
	Count int    `json:"count" csv:"Count"`
}

// YearRating is the mean rating over every show that debuted in Year.
// Years with no shows in range produce no YearRating at all (a gap in the
// trend line, not a zero).
type YearRating struct {
	Year       int     `json:"year" csv:"Year"`
	MeanRating float64 `json:"mean_rating" csv:"MeanRating"`
	Count      int     `json:"count" csv:"Count"`
}

// YearGenreMatrix is the densified year x primary-genre count matrix used
// by the heatmap. Counts[i][j] is the number of shows with primary genre
// Genres[i] that debuted in Years[j]; pairs absent from the dataset hold 0.
// The genre axis covers only genres observed for at least one year in
// range, never the full theoretical genre set.
type YearGenreMatrix struct {
	Years  []int       `json:"years"`
	Genres []string    `json:"genres"`
	Counts [][]float64 `json:"counts"`
}

// Max returns the largest count in the matrix, used to scale the heatmap
// color range.
func (m YearGenreMatrix) Max() float64 {
	max := 0.0
	for _, row := range m.Counts {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}
