package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/retroviz/gamewatch/pkg/dataset"
	"github.com/retroviz/gamewatch/pkg/errors"
	"github.com/retroviz/gamewatch/pkg/render"
	"github.com/retroviz/gamewatch/pkg/render/charts"
	"github.com/retroviz/gamewatch/pkg/render/timelinesvg"
)

// Chart names, shared by the chart commands, the browse picker, and the
// preview server routes.
const (
	chartProduced = "produced"
	chartReleased = "released"
	chartSeries   = "series"
	chartOutliers = "outliers"
	chartTimeline = "timeline"
)

// chartNames lists every chart in display order.
var chartNames = []string{chartProduced, chartReleased, chartSeries, chartOutliers, chartTimeline}

// chartDescriptions maps chart names to one-line summaries.
var chartDescriptions = map[string]string{
	chartProduced: "Bar chart of units produced per game",
	chartReleased: "Bar chart of releases per year",
	chartSeries:   "Bar chart of releases per series",
	chartOutliers: "Histogram and box plot for a numeric column",
	chartTimeline: "Annotated release timeline along a date axis",
}

const (
	defaultDataPath = "examples/games.toml"
	figuresDir      = "figures"
	pngScale        = 2.0 // 2x resolution for rasterized timeline output
)

// chartOpts holds the flags shared by every chart command.
type chartOpts struct {
	data    string // dataset file path
	output  string // output file path (empty derives a figures/ path)
	format  string // svg, png, or pdf
	maxYear int    // drop releases after this year (0 keeps everything)
	noSave  bool   // render without writing the artifact
}

// renderOpts carries the per-chart rendering knobs.
type renderOpts struct {
	format string
	column string // outliers only
	manual bool   // timeline only: replay the hand-tuned level table
}

// addChartFlags registers the shared chart flags on cmd.
func addChartFlags(cmd *cobra.Command, opts *chartOpts) {
	cmd.Flags().StringVarP(&opts.data, "data", "d", defaultDataPath, "dataset file (TOML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default a figures/ path derived from the chart)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", charts.FormatSVG, "output format: svg, png, pdf")
	cmd.Flags().IntVar(&opts.maxYear, "max-year", 0, "only include releases up to this year")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "render without writing the artifact")
}

// loadDataset reads the catalogue and applies the max-year filter.
func loadDataset(ctx context.Context, path string, maxYear int) (*dataset.Dataset, error) {
	logger := loggerFromContext(ctx)

	ds, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loaded %d records from %s", ds.Len(), path)

	if maxYear != 0 {
		before := ds.Len()
		ds = ds.FilterMaxYear(maxYear)
		logger.Debugf("Filtered to releases through %d: %d → %d records", maxYear, before, ds.Len())
	}
	return ds, nil
}

// renderChart renders one chart from an already-filtered dataset.
func renderChart(name string, ds *dataset.Dataset, opts renderOpts) ([]byte, error) {
	chartOpts := charts.Options{Format: opts.format}

	switch name {
	case chartProduced:
		return charts.Produced(ds, chartOpts)
	case chartReleased:
		return charts.ReleasedPerYear(ds, chartOpts)
	case chartSeries:
		return charts.ReleasedPerSeries(ds, chartOpts)
	case chartOutliers:
		column := opts.column
		if column == "" {
			column = dataset.ColumnProduced
		}
		return charts.Outliers(ds, column, chartOpts)
	case chartTimeline:
		return renderTimeline(ds, opts)
	default:
		return nil, errors.New(errors.ErrCodeInvalidChart, "unknown chart: %s", name)
	}
}

// renderTimeline builds the timeline SVG and converts it when a raster or
// print format was requested.
func renderTimeline(ds *dataset.Dataset, opts renderOpts) ([]byte, error) {
	if err := charts.ValidateFormat(opts.format); err != nil {
		return nil, err
	}

	entries, err := timelinesvg.Build(ds, opts.manual)
	if err != nil {
		return nil, err
	}
	svg := timelinesvg.RenderSVG(entries)

	switch opts.format {
	case charts.FormatPNG:
		return render.ToPNG(svg, pngScale)
	case charts.FormatPDF:
		return render.ToPDF(svg)
	default:
		return svg, nil
	}
}

// runChart is the common chart command body: load, render, persist.
func runChart(ctx context.Context, name string, opts chartOpts, ropts renderOpts) error {
	logger := loggerFromContext(ctx)
	if err := charts.ValidateFormat(opts.format); err != nil {
		return err
	}
	ropts.format = opts.format

	ds, err := loadDataset(ctx, opts.data, opts.maxYear)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", name))
	spin.Start()
	data, err := renderChart(name, ds, ropts)
	if err != nil {
		spin.StopWithError(fmt.Sprintf("Rendering %s failed", name))
		return fmt.Errorf("render %s: %w", name, err)
	}
	spin.Stop()
	prog.done(fmt.Sprintf("Rendered %s (%d bytes)", name, len(data)))

	if opts.noSave {
		printInfo("Skipped writing %s artifact (--no-save)", name)
		return nil
	}

	path := opts.output
	if path == "" {
		path = defaultOutputPath(name, opts.format)
	}
	if err := writeArtifact(path, data); err != nil {
		return err
	}

	printSuccess("Generated %s", path)
	return nil
}

// artifactNames maps charts to their figures/ file stems.
var artifactNames = map[string]string{
	chartProduced: "nintendo_game_and_watch_games_produced",
	chartReleased: "nintendo_game_and_watch_games_released",
	chartSeries:   "nintendo_game_and_watch_series_released",
	chartOutliers: "nintendo_game_and_watch_outliers",
	chartTimeline: "nintendo_game_and_watch_timeline",
}

// defaultOutputPath derives the figures/ path for a chart artifact.
func defaultOutputPath(chart, format string) string {
	return filepath.Join(figuresDir, artifactNames[chart]+"."+format)
}

// writeArtifact writes data to path, creating parent directories as needed.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
