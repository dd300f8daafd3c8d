package main

//CLI interface to generate deterministic synthetic result tables. Intention is to have inputs for the
//variability tool without running an experiment. The same seed always yields the same table
import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"devoTools/testUtils"
	"devoTools/variability"
)

func main() {
	seed := flag.Int64("seed", 42, "Seed for pseudo RNG")
	outDir := flag.String("out", "", "Directory to store the table in")
	metricName := flag.String("metric", "offspring", fmt.Sprintf("Which table to generate, one of %v", variability.GetAvailableMetrics()))
	runs := flag.Int("runs", variability.DefaultExpectedReplicates, "Runs per world, i.e. observations per species")
	worlds := flag.Int("worlds", 2, "Number of worlds")
	species := flag.Int("species", 4, "Number of species per world")

	flag.Parse()

	if *outDir == "" {
		fmt.Println("Set \"out\"!")
		flag.PrintDefaults()
		os.Exit(1)
	}

	metric, err := variability.GetMetric(*metricName)
	if err != nil {
		log.Fatalf("Invalid metric : %v", err)
	}
	if err := os.MkdirAll(*outDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create out dir : %v", err)
	}

	rows := testUtils.DRNGResults(*runs, *worlds, *species, *seed, metric.Integral)

	outPath := filepath.Join(*outDir, metric.FileName)
	outFile, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create out file : %v", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			log.Printf("Failed to close outFile : %v", err)
		}
	}()

	w := bufio.NewWriter(outFile)
	if err := testUtils.WriteResultsCSV(w, metric.Column, rows); err != nil {
		log.Fatalf("Failed to write as csv : %v", err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to flush %v : %v", outPath, err)
	}
	log.Printf("Wrote %v rows to %v", len(rows), outPath)
}
