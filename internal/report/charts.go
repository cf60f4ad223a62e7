package report

import (
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	apperrors "showlens/internal/errors"
	"showlens/pkg/contracts/domain"
)

// Default figure geometry. Charts with one row per show or genre grow
// vertically with the label count instead.
const (
	chartWidth  = 12 * vg.Inch
	chartHeight = 6 * vg.Inch

	histogramBins = 10
	barThickness  = vg.Length(14)
)

// Chart file names, one per reporting sub-step.
const (
	ChartRatingByGenre    = "avg_rating_by_genre.png"
	ChartDurationRating   = "duration_vs_rating.png"
	ChartTopShows         = "top_rated_shows.png"
	ChartBottomShows      = "lowest_rated_shows.png"
	ChartGenreYearHeatmap = "shows_by_genre_year.png"
	ChartRatingTrend      = "avg_rating_by_year.png"
	ChartRatingHistogram  = "rating_distribution.png"
	ChartDurationHist     = "duration_distribution.png"
	ChartGenreFrequency   = "genre_frequency.png"
)

var (
	barBlue    = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	barCoral   = color.RGBA{R: 205, G: 92, B: 92, A: 255}
	histOrange = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	lineGreen  = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	kdeNavy    = color.RGBA{R: 25, G: 25, B: 112, A: 255}
)

// Renderer draws analysis charts as PNG files into one output directory.
type Renderer struct {
	dir    string
	logger *slog.Logger
}

// NewRenderer creates a renderer writing into dir, creating it as needed.
func NewRenderer(dir string, logger *slog.Logger) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, apperrors.NewStorageError("cannot create output directory", err).
			WithContext("dir", dir)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{dir: dir, logger: logger}, nil
}

func (r *Renderer) path(name string) string {
	return filepath.Join(r.dir, name)
}

// save writes the plot; per-title and per-genre bar charts pass their own
// height so long label lists stay readable.
func (r *Renderer) save(p *plot.Plot, height vg.Length, name string) error {
	out := r.path(name)
	if err := p.Save(chartWidth, height, out); err != nil {
		return apperrors.NewRenderError(name, err)
	}
	r.logger.Info("chart written", slog.String("path", out))
	return nil
}

// barHeight scales the figure with the number of horizontal bars.
func barHeight(n int) vg.Length {
	h := vg.Length(n)*2.5*barThickness + 1.5*vg.Inch
	if h < chartHeight {
		return chartHeight
	}
	return h
}

// RatingByGenre renders the mean rating per primary genre as a horizontal
// bar chart, best-rated genre at the top.
func (r *Renderer) RatingByGenre(rows []domain.GenreRating) error {
	if len(rows) == 0 {
		r.logger.Warn("skipping rating-by-genre chart: no genres")
		return nil
	}

	values := make(plotter.Values, len(rows))
	labels := make([]string, len(rows))
	// NominalY stacks index 0 at the bottom; reverse so the highest mean
	// lands on top like the report order.
	for i, row := range rows {
		j := len(rows) - 1 - i
		values[j] = row.MeanRating
		labels[j] = row.Genre
	}

	p := plot.New()
	p.Title.Text = "Average rating by primary genre"
	p.X.Label.Text = "Average rating"
	p.Y.Label.Text = "Primary genre"

	bars, err := plotter.NewBarChart(values, barThickness)
	if err != nil {
		return apperrors.NewRenderError(ChartRatingByGenre, err)
	}
	bars.Horizontal = true
	bars.Color = barBlue
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(labels...)

	return r.save(p, barHeight(len(rows)), ChartRatingByGenre)
}

// DurationVsRating renders the (duration, rating) scatter, one color per
// distinct full genre string. No legend: with hundreds of genre combos a
// legend would swallow the plot, the coloring is purely visual.
func (r *Renderer) DurationVsRating(shows []domain.Show) error {
	if len(shows) == 0 {
		r.logger.Warn("skipping duration-vs-rating chart: no shows")
		return nil
	}

	groups := make(map[string]plotter.XYs)
	for _, s := range shows {
		groups[s.Genres] = append(groups[s.Genres], plotter.XY{X: s.DurationMinutes, Y: s.Rating})
	}
	genres := make([]string, 0, len(groups))
	for genre := range groups {
		genres = append(genres, genre)
	}
	sort.Strings(genres)

	p := plot.New()
	p.Title.Text = "Episode duration vs rating"
	p.X.Label.Text = "Duration (min)"
	p.Y.Label.Text = "Rating"
	p.Add(plotter.NewGrid())

	for i, genre := range genres {
		scatter, err := plotter.NewScatter(groups[genre])
		if err != nil {
			return apperrors.NewRenderError(ChartDurationRating, err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Radius = vg.Points(2.5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
	}

	return r.save(p, chartHeight, ChartDurationRating)
}

// TopShows renders the given pre-sorted show list as horizontal rating
// bars, first show at the top.
func (r *Renderer) TopShows(shows []domain.Show, title, name string) error {
	if len(shows) == 0 {
		r.logger.Warn("skipping show ranking chart: no shows", slog.String("chart", name))
		return nil
	}

	values := make(plotter.Values, len(shows))
	labels := make([]string, len(shows))
	for i, s := range shows {
		j := len(shows) - 1 - i
		values[j] = s.Rating
		labels[j] = s.Title
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Rating"
	p.Y.Label.Text = "Show"

	bars, err := plotter.NewBarChart(values, barThickness)
	if err != nil {
		return apperrors.NewRenderError(name, err)
	}
	bars.Horizontal = true
	bars.Color = barCoral
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(labels...)

	return r.save(p, barHeight(len(shows)), name)
}

// countGrid adapts a YearGenreMatrix to the heatmap's grid interface.
// Years run along X, genre row indexes along Y.
type countGrid struct {
	m domain.YearGenreMatrix
}

func (g countGrid) Dims() (c, r int)   { return len(g.m.Years), len(g.m.Genres) }
func (g countGrid) Z(c, r int) float64 { return g.m.Counts[r][c] }
func (g countGrid) X(c int) float64    { return float64(g.m.Years[c]) }
func (g countGrid) Y(r int) float64    { return float64(r) }

// GenreYearHeatmap renders the year x genre count matrix.
func (r *Renderer) GenreYearHeatmap(m domain.YearGenreMatrix) error {
	if len(m.Years) == 0 || len(m.Genres) == 0 {
		r.logger.Warn("skipping genre-year heatmap: no shows in year range")
		return nil
	}

	p := plot.New()
	p.Title.Text = "Shows per genre and debut year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Primary genre"

	heat := plotter.NewHeatMap(countGrid{m: m}, palette.Heat(12, 1))
	heat.Min = 0
	p.Add(heat)

	yearTicks := make([]plot.Tick, len(m.Years))
	for i, year := range m.Years {
		yearTicks[i] = plot.Tick{Value: float64(year), Label: strconv.Itoa(year)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(yearTicks)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	genreTicks := make([]plot.Tick, len(m.Genres))
	for i, genre := range m.Genres {
		genreTicks[i] = plot.Tick{Value: float64(i), Label: genre}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(genreTicks)

	height := vg.Length(len(m.Genres))*0.35*vg.Inch + 1.5*vg.Inch
	if height < chartHeight {
		height = chartHeight
	}
	return r.save(p, height, ChartGenreYearHeatmap)
}

// RatingTrend renders the mean rating per debut year as a line with point
// markers. Years absent from rows stay gaps; nothing is interpolated.
func (r *Renderer) RatingTrend(rows []domain.YearRating) error {
	if len(rows) == 0 {
		r.logger.Warn("skipping rating trend chart: no shows in year range")
		return nil
	}

	pts := make(plotter.XYs, len(rows))
	for i, row := range rows {
		pts[i] = plotter.XY{X: float64(row.Year), Y: row.MeanRating}
	}

	p := plot.New()
	p.Title.Text = "Average rating by debut year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Average rating"
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return apperrors.NewRenderError(ChartRatingTrend, err)
	}
	line.Color = lineGreen
	line.Width = vg.Points(2)
	points.GlyphStyle.Color = lineGreen
	points.GlyphStyle.Radius = vg.Points(3)
	points.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(line, points)

	return r.save(p, chartHeight, ChartRatingTrend)
}

// Histogram renders a 10-bin histogram of values. withDensity adds the
// smoothed density overlay used by the rating distribution.
func (r *Renderer) Histogram(values []float64, title, xLabel, name string, fill color.Color, withDensity bool) error {
	if len(values) == 0 {
		r.logger.Warn("skipping histogram: no values", slog.String("chart", name))
		return nil
	}

	vals := make(plotter.Values, len(values))
	copy(vals, values)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(vals, histogramBins)
	if err != nil {
		return apperrors.NewRenderError(name, err)
	}
	hist.FillColor = fill
	p.Add(hist)

	if withDensity {
		if curve := densityCurve(values, histogramBins); len(curve) > 0 {
			line, err := plotter.NewLine(curve)
			if err != nil {
				return apperrors.NewRenderError(name, err)
			}
			line.Color = kdeNavy
			line.Width = vg.Points(2)
			p.Add(line)
		}
	}

	return r.save(p, chartHeight, name)
}

// RatingHistogram is the rating distribution with density overlay.
func (r *Renderer) RatingHistogram(shows []domain.Show) error {
	values := make([]float64, len(shows))
	for i, s := range shows {
		values[i] = s.Rating
	}
	return r.Histogram(values, "Rating distribution", "Rating", ChartRatingHistogram, barBlue, true)
}

// DurationHistogram is the episode duration distribution.
func (r *Renderer) DurationHistogram(shows []domain.Show) error {
	values := make([]float64, len(shows))
	for i, s := range shows {
		values[i] = s.DurationMinutes
	}
	return r.Histogram(values, "Episode duration distribution", "Duration (minutes)", ChartDurationHist, histOrange, false)
}

// GenreFrequency renders the primary genre counts as horizontal bars,
// most frequent genre at the top.
func (r *Renderer) GenreFrequency(rows []domain.GenreCount) error {
	if len(rows) == 0 {
		r.logger.Warn("skipping genre frequency chart: no genres")
		return nil
	}

	values := make(plotter.Values, len(rows))
	labels := make([]string, len(rows))
	for i, row := range rows {
		j := len(rows) - 1 - i
		values[j] = float64(row.Count)
		labels[j] = row.Genre
	}

	p := plot.New()
	p.Title.Text = "Primary genre frequency"
	p.X.Label.Text = "Shows"
	p.Y.Label.Text = "Primary genre"

	bars, err := plotter.NewBarChart(values, barThickness)
	if err != nil {
		return apperrors.NewRenderError(ChartGenreFrequency, err)
	}
	bars.Horizontal = true
	bars.Color = barBlue
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(labels...)

	return r.save(p, barHeight(len(rows)), ChartGenreFrequency)
}
