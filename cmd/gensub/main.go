//Package main provides a cli interface to generate SLURM submission scripts, one per condition of a parameter grid
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"devoTools/jobGrid"
	"devoTools/logging"
	"devoTools/metrics"
)

//application bundles the command line configuration options
type application struct {
	dataDir      string
	configDir    string
	replicates   int
	jobDir       string
	templatePath string
	gridPath     string
	metricsFile  string
	verbose      bool
	//replicatesSet is true if replicates came from the command line or the environment
	replicatesSet bool
}

//ParseAndValidateFlags parses args, applies GENSUB_* environment overrides and returns the values if all logic
//checks pass. Otherwise a multiline error is returned that also contains an overview over all flags
func ParseAndValidateFlags(args []string) (*application, error) {
	cmdFlags := pflag.NewFlagSet("gensub", pflag.ContinueOnError)
	cmdFlags.SetOutput(io.Discard)

	cmdFlags.String("data_dir", "", "Where is the output directory for phase one of each run?")
	cmdFlags.String("config_dir", "", "Where is the configuration directory for experiment?")
	cmdFlags.Int("replicates", jobGrid.DefaultConfig().Replicates, "How many replicates should we run of each condition?")
	cmdFlags.String("job_dir", "", "Where to output these job files?")
	cmdFlags.String("template", "", "Submission template with <<PLACEHOLDER>> tokens. Defaults to the built-in SLURM template")
	cmdFlags.String("grid", "", "HCL file describing settings and parameters. Defaults to the built-in grid")
	cmdFlags.String("metrics_file", "", "If set, write run metrics in prometheus text format to this file")
	cmdFlags.BoolP("verbose", "v", false, "Enable debug logging")

	if err := cmdFlags.Parse(args); err != nil {
		return nil, fmt.Errorf("%v\n%s", err, cmdFlags.FlagUsages())
	}

	v := viper.New()
	v.SetEnvPrefix("gensub")
	v.AutomaticEnv()
	if err := v.BindPFlags(cmdFlags); err != nil {
		return nil, fmt.Errorf("failed to bind flags : %v", err)
	}

	app := &application{
		dataDir:       v.GetString("data_dir"),
		configDir:     v.GetString("config_dir"),
		replicates:    v.GetInt("replicates"),
		jobDir:        v.GetString("job_dir"),
		templatePath:  v.GetString("template"),
		gridPath:      v.GetString("grid"),
		metricsFile:   v.GetString("metrics_file"),
		verbose:       v.GetBool("verbose"),
		replicatesSet: v.IsSet("replicates"),
	}

	var descriptiveError error
	switch {
	case app.dataDir == "":
		descriptiveError = fmt.Errorf("please set data_dir")
	case app.configDir == "":
		descriptiveError = fmt.Errorf("please set config_dir")
	case app.jobDir == "":
		descriptiveError = fmt.Errorf("please set job_dir")
	case app.replicates <= 0:
		descriptiveError = fmt.Errorf("replicates must be positive, got %v", app.replicates)
	}
	if descriptiveError != nil {
		return nil, fmt.Errorf("%v\nUsage:\n%s", descriptiveError, cmdFlags.FlagUsages())
	}
	return app, nil
}

//loadGrid returns the grid from app.gridPath or the built-in one. Command line values win over the grid settings
func loadGrid(app *application) (*jobGrid.Grid, error) {
	base := jobGrid.DefaultConfig()
	var grid *jobGrid.Grid
	var err error
	if app.gridPath == "" {
		grid, err = jobGrid.DefaultGrid(base)
	} else {
		grid, err = jobGrid.LoadGridFile(app.gridPath, base)
	}
	if err != nil {
		return nil, err
	}
	grid.Config.DataDir = app.dataDir
	grid.Config.ConfigDir = app.configDir
	if app.replicatesSet || app.gridPath == "" {
		grid.Config.Replicates = app.replicates
	}
	return grid, nil
}

func loadTemplate(path string) (string, error) {
	if path == "" {
		return jobGrid.DefaultTemplate(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template : %w", err)
	}
	return string(raw), nil
}

//run generates the files and prints the summary to out
func run(ctx context.Context, app *application, out io.Writer) error {
	report := logging.NewReportLogger(out)
	stats := metrics.New()

	grid, err := loadGrid(app)
	if err != nil {
		return err
	}
	template, err := loadTemplate(app.templatePath)
	if err != nil {
		return err
	}
	generator, err := jobGrid.NewGenerator(grid.Registry, grid.Config, template, stats)
	if err != nil {
		return err
	}
	jobs, err := generator.Jobs()
	if err != nil {
		return err
	}

	report.Infof("Generating %d jobs across %d files!", generator.TotalRuns(jobs), len(jobs))
	report.Info("Conditions:")
	for _, job := range jobs {
		report.Infof("  %v", job.Combination)
	}

	written, err := generator.Generate(ctx, app.jobDir)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"files":   len(written),
		"job_dir": app.jobDir,
	}).Info("done")

	if app.metricsFile != "" {
		if err := stats.WriteTextfile(app.metricsFile); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	app, err := ParseAndValidateFlags(os.Args[1:])
	if err != nil {
		fmt.Printf("Error parsing config : %v\n", err)
		os.Exit(2)
	}
	logging.Configure(app.verbose)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, app, os.Stdout); err != nil {
		logging.WithStacktrace(log.NewEntry(log.StandardLogger()), err).Fatal("gensub failed")
	}
}
