//Package main provides a cli interface to plot and summarize the per-species variability of an experiment
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"devoTools/logging"
	"devoTools/metrics"
	"devoTools/resultSource"
	"devoTools/variability"
)

//options shared by all metric sub commands
type options struct {
	outDir      string
	replicates  int
	workers     int
	widthCm     float64
	heightCm    float64
	metricsFile string
	verbose     bool
}

//rootCmd builds the command tree. Every registered metric becomes a sub command, the report goes to out
func rootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "variability",
		Short: "variability plots per-world box plots of a result table and reports the per-species variance",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Configure(opts.verbose)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.outDir, "out", ".", "Directory for the plot files")
	cmd.PersistentFlags().IntVar(&opts.replicates, "replicates", variability.DefaultExpectedReplicates,
		"Expected number of values per species. Other counts are reported")
	cmd.PersistentFlags().IntVar(&opts.workers, "workers", 0, "Number of plots rendered in parallel. 0 uses all cpus")
	cmd.PersistentFlags().Float64Var(&opts.widthCm, "width", 0, "Plot width in cm. 0 uses the default size")
	cmd.PersistentFlags().Float64Var(&opts.heightCm, "height", 0, "Plot height in cm. 0 uses the default size")
	cmd.PersistentFlags().StringVar(&opts.metricsFile, "metrics_file", "", "If set, write run metrics in prometheus text format to this file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	for _, name := range variability.GetAvailableMetrics() {
		metric, err := variability.GetMetric(name)
		if err != nil {
			panic(err)
		}
		cmd.AddCommand(metricCmd(metric, opts, out))
	}
	return cmd
}

func metricCmd(metric variability.Metric, opts *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <experiment dir>", metric.Name),
		Short: fmt.Sprintf("Analyze %v of the experiment in <experiment dir>", metric.FileName),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), metric, args[0], opts, out)
		},
	}
}

func run(ctx context.Context, metric variability.Metric, experimentDir string, opts *options, out io.Writer) error {
	if opts.widthCm < 0 || opts.heightCm < 0 {
		return fmt.Errorf("plot size must not be negative")
	}
	stats := metrics.New()
	analyzer, err := variability.NewAnalyzer(resultSource.NewDirReader(experimentDir), variability.Config{
		Metric:             metric,
		OutDir:             opts.outDir,
		ExpectedReplicates: opts.replicates,
		Workers:            opts.workers,
		Width:              vg.Length(opts.widthCm) * vg.Centimeter,
		Height:             vg.Length(opts.heightCm) * vg.Centimeter,
		Report:             out,
		Metrics:            stats,
	})
	if err != nil {
		return err
	}
	summaries, err := analyzer.Run(ctx)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"metric": metric.Name,
		"worlds": len(summaries),
		"out":    opts.outDir,
	}).Info("done")

	if opts.metricsFile != "" {
		if err := stats.WriteTextfile(opts.metricsFile); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		logging.WithStacktrace(log.NewEntry(log.StandardLogger()), err).Error("variability failed")
		cancel()
		os.Exit(1)
	}
}
