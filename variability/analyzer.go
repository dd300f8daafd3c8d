package variability

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"

	"devoTools/boxPlot"
	"devoTools/metrics"
	"devoTools/resultSource"
)

//Config bundles the options of an Analyzer run
type Config struct {
	Metric Metric
	//OutDir receives the plot files. Created if missing
	OutDir string
	//ExpectedReplicates is the group size below/above which a diagnostic is emitted
	ExpectedReplicates int
	//Workers is the number of plots rendered concurrently
	Workers int
	//Width and Height of the plots, 0 selects the boxPlot defaults
	Width, Height vg.Length
	//Report receives the human readable diagnostics. Defaults to os.Stdout
	Report io.Writer
	//Metrics is optional
	Metrics *metrics.Metrics
}

//Analyzer loads one result table, plots it per world and summarizes the per-species variance
type Analyzer struct {
	reader resultSource.ResultsReader
	config Config
}

//NewAnalyzer validates config and fills in defaults
func NewAnalyzer(reader resultSource.ResultsReader, config Config) (*Analyzer, error) {
	if config.Metric.FileName == "" {
		return nil, fmt.Errorf("no metric configured")
	}
	if config.ExpectedReplicates <= 0 {
		return nil, fmt.Errorf("expected replicates must be positive, got %v", config.ExpectedReplicates)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.OutDir == "" {
		config.OutDir = "."
	}
	if config.Report == nil {
		config.Report = os.Stdout
	}
	return &Analyzer{
		reader: reader,
		config: config,
	}, nil
}

//plotGroups converts a world into box plot groups, ordered by species id
func plotGroups(world WorldGroup) []boxPlot.Group {
	ordered := make([]int, len(world.Species))
	bySpecies := make(map[int][]float64, len(world.Species))
	for i, s := range world.Species {
		ordered[i] = s.Species
		bySpecies[s.Species] = s.Values
	}
	slices.Sort(ordered)

	groups := make([]boxPlot.Group, len(ordered))
	for i, species := range ordered {
		groups[i] = boxPlot.Group{
			Label:  strconv.Itoa(species),
			Values: bySpecies[species],
		}
	}
	return groups
}

//renderPlots writes one plot per world to OutDir, using up to Workers goroutines
func (a *Analyzer) renderPlots(ctx context.Context, worlds []WorldGroup) error {
	if err := os.MkdirAll(a.config.OutDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory : %w", err)
	}
	m := a.config.Metric

	workers, ctx := errgroup.WithContext(ctx)
	workers.SetLimit(a.config.Workers)
	for _, world := range worlds {
		world := world
		workers.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			plotPath := filepath.Join(a.config.OutDir, m.PlotFileName(world.World))
			log.Printf("Storing plot in %v", plotPath)
			labels := boxPlot.Labels{
				Title: m.PlotTitle(world.World),
				X:     resultSource.SpeciesColumn,
				Y:     m.Column,
			}
			if err := boxPlot.Save(labels, plotGroups(world), a.config.Width, a.config.Height, plotPath); err != nil {
				return fmt.Errorf("failed to plot world %v : %w", world.World, err)
			}
			if a.config.Metrics != nil {
				a.config.Metrics.PlotsWritten.Inc()
			}
			return nil
		})
	}
	return workers.Wait()
}

//report writes the diagnostics of summaries to the configured report writer
func (a *Analyzer) report(summaries []WorldSummary) error {
	for _, ws := range summaries {
		for _, s := range ws.Mismatches() {
			log.WithFields(log.Fields{
				"world":   ws.World,
				"species": s.Species,
				"count":   s.Count,
				"want":    a.config.ExpectedReplicates,
			}).Warn("unexpected number of replicates")
			if a.config.Metrics != nil {
				a.config.Metrics.ReplicateMismatch.Inc()
			}
			if _, err := fmt.Fprintf(a.config.Report, "world %s species %d has %d values, expected %d : %v\n",
				ws.World, s.Species, s.Count, a.config.ExpectedReplicates, s.Values); err != nil {
				return err
			}
		}
		if a.config.Metric.ReportMean {
			if _, err := fmt.Fprintf(a.config.Report, "world %s mean species variance %v\n", ws.World, ws.MeanVariance); err != nil {
				return err
			}
		}
	}
	return nil
}

//Run performs the whole analysis. Any malformed input aborts the run before plots are written
func (a *Analyzer) Run(ctx context.Context) ([]WorldSummary, error) {
	m := a.config.Metric
	rows, err := a.reader.Read(m.FileName, m.Column)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v : %w", m.FileName, err)
	}
	exploded, err := Explode(rows, m)
	if err != nil {
		return nil, fmt.Errorf("failed to explode %v : %w", m.FileName, err)
	}
	if a.config.Metrics != nil {
		a.config.Metrics.RowsExploded.Add(float64(len(exploded)))
	}
	worlds := GroupByWorld(exploded)
	log.WithFields(log.Fields{
		"metric":   m.Name,
		"rows":     len(rows),
		"exploded": len(exploded),
		"worlds":   len(worlds),
	}).Info("loaded results")

	if err := a.renderPlots(ctx, worlds); err != nil {
		return nil, err
	}

	summaries := Summarize(worlds, a.config.ExpectedReplicates)
	if err := a.report(summaries); err != nil {
		return nil, fmt.Errorf("failed to write report : %w", err)
	}
	return summaries, nil
}
