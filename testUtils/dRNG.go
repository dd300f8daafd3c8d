package testUtils

import (
	"encoding/csv"
	"io"
	"math"
	"math/rand"
	"strconv"

	"devoTools/listCodec"
)

//DRNGFloat64Slice wraps DRNGFloat64SliceCustomScale with scaleFactor set to 1000
func DRNGFloat64Slice(length int, seed int64) []float64 {
	return DRNGFloat64SliceCustomScale(length, seed, 1000)
}

//DRNGFloat64SliceCustomScale returns a slice of length entries with pseudo random values from -scaleFactor to scaleFactor
//Calling with the same seed will yield the same sequence. Intended to generate large test data sets
func DRNGFloat64SliceCustomScale(length int, seed int64, scaleFactor float64) []float64 {
	dRNGSource := rand.NewSource(seed)
	dRNG := rand.New(dRNGSource)
	buf := make([]float64, length)
	for i := 0; i < length; i++ {
		sign := dRNG.Float32()
		buf[i] = dRNG.Float64() * scaleFactor
		if sign <= 0.5 {
			buf[i] *= -1
		}
	}
	return buf
}

//SyntheticRow is one (run, world) record of a synthetic result table
type SyntheticRow struct {
	Run     int
	World   int
	Species []int
	Values  []float64
}

//DRNGResults creates runs*worlds rows, each listing species 0..species-1 with a pseudo random value.
//Every (world, species) group thus has exactly runs observations. Values are non negative and,
//if integral is set, whole numbers. Calling with the same seed will yield the same table
func DRNGResults(runs, worlds, species int, seed int64, integral bool) []SyntheticRow {
	values := DRNGFloat64SliceCustomScale(runs*worlds*species, seed, 100)
	rows := make([]SyntheticRow, 0, runs*worlds)
	next := 0
	for run := 0; run < runs; run++ {
		for world := 1; world <= worlds; world++ {
			row := SyntheticRow{
				Run:     run,
				World:   world,
				Species: make([]int, species),
				Values:  make([]float64, species),
			}
			for s := 0; s < species; s++ {
				row.Species[s] = s
				v := math.Abs(values[next])
				if integral {
					v = math.Floor(v)
				}
				row.Values[s] = v
				next++
			}
			rows = append(rows, row)
		}
	}
	return rows
}

//WriteResultsCSV stores rows as result table with the columns run,world,epoch,species,<column>
func WriteResultsCSV(w io.Writer, column string, rows []SyntheticRow) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write([]string{"run", "world", "epoch", "species", column}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Run),
			strconv.Itoa(row.World),
			"0",
			listCodec.FormatInts(row.Species),
			listCodec.FormatFloats(row.Values),
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
