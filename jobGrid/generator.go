package jobGrid

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"devoTools/metrics"
)

//Generator renders one submission file per condition of a Registry
type Generator struct {
	registry *Registry
	config   Config
	template string
	metrics  *metrics.Metrics
}

//NewGenerator validates config. m may be nil
func NewGenerator(registry *Registry, config Config, template string, m *metrics.Metrics) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Generator{
		registry: registry,
		config:   config,
		template: template,
		metrics:  m,
	}, nil
}

//Jobs enumerates all conditions and assigns ordinals in enumeration order, starting at 0
func (g *Generator) Jobs() ([]Job, error) {
	combos, err := g.registry.Combinations()
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate combinations")
	}
	jobs := make([]Job, len(combos))
	for i, combo := range combos {
		jobs[i] = NewJob(i, combo, g.config)
	}
	return jobs, nil
}

//TotalRuns returns the number of replicate runs described by jobs
func (g *Generator) TotalRuns(jobs []Job) int {
	return len(jobs) * g.config.Replicates
}

//Generate writes <jobDir>/<prefix>.sb for every job, creating jobDir if needed. Existing files are overwritten.
//Files written before a failure are left in place. The returned paths are in ordinal order
func (g *Generator) Generate(ctx context.Context, jobDir string) ([]string, error) {
	jobs, err := g.Jobs()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(jobDir, os.ModePerm); err != nil {
		return nil, errors.Wrapf(err, "failed to create job directory %v", jobDir)
	}

	written := make([]string, 0, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return written, errors.Wrap(err, "generation cancelled")
		}
		outPath := filepath.Join(jobDir, job.FileName())
		if err := os.WriteFile(outPath, []byte(job.Render(g.template, g.config)), 0o644); err != nil {
			return written, errors.Wrapf(err, "failed to write %v", outPath)
		}
		written = append(written, outPath)
		log.WithFields(log.Fields{
			"file": outPath,
			"seed": job.Seed,
		}).Debug("wrote submission file")
		if g.metrics != nil {
			g.metrics.FilesWritten.Inc()
			g.metrics.JobsTotal.Add(float64(g.config.Replicates))
		}
	}
	return written, nil
}
