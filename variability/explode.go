package variability

import (
	"errors"
	"fmt"

	"devoTools/listCodec"
	"devoTools/resultSource"
)

var ErrLengthMismatch = errors.New("species and value lists differ in length")

//ExplodedRow is one (world, species) observation
type ExplodedRow struct {
	World   string
	Species int
	Value   float64
}

//parseValues decodes a metric cell according to m.Integral
func parseValues(m Metric, raw string) ([]float64, error) {
	if !m.Integral {
		return listCodec.ParseFloats(raw)
	}
	ints, err := listCodec.ParseInts(raw)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(ints))
	for i, v := range ints {
		values[i] = float64(v)
	}
	return values, nil
}

//Explode pairs the species and metric lists of every row position by position. The result keeps the row order
//and inside a row the list order
func Explode(rows []resultSource.ResultsRow, m Metric) ([]ExplodedRow, error) {
	exploded := make([]ExplodedRow, 0, len(rows))
	for _, row := range rows {
		species, err := listCodec.ParseInts(row.Species)
		if err != nil {
			return nil, fmt.Errorf("line %v column %v : %w", row.Line, resultSource.SpeciesColumn, err)
		}
		values, err := parseValues(m, row.Values)
		if err != nil {
			return nil, fmt.Errorf("line %v column %v : %w", row.Line, m.Column, err)
		}
		if len(species) != len(values) {
			return nil, fmt.Errorf("line %v : %w (%v species, %v values)", row.Line, ErrLengthMismatch, len(species), len(values))
		}
		for i := range species {
			exploded = append(exploded, ExplodedRow{
				World:   row.World,
				Species: species[i],
				Value:   values[i],
			})
		}
	}
	return exploded, nil
}

//SpeciesGroup holds all observations of one species inside one world
type SpeciesGroup struct {
	Species int
	Values  []float64
}

//WorldGroup holds the species groups of one world, in the order the species were first encountered
type WorldGroup struct {
	World   string
	Species []SpeciesGroup
}

//GroupByWorld partitions exploded by world and species. Worlds and species keep first-encountered order
func GroupByWorld(exploded []ExplodedRow) []WorldGroup {
	groups := make([]WorldGroup, 0)
	worldIDX := make(map[string]int)
	speciesIDX := make([]map[int]int, 0)

	for _, row := range exploded {
		wi, ok := worldIDX[row.World]
		if !ok {
			wi = len(groups)
			worldIDX[row.World] = wi
			groups = append(groups, WorldGroup{World: row.World})
			speciesIDX = append(speciesIDX, make(map[int]int))
		}
		si, ok := speciesIDX[wi][row.Species]
		if !ok {
			si = len(groups[wi].Species)
			speciesIDX[wi][row.Species] = si
			groups[wi].Species = append(groups[wi].Species, SpeciesGroup{Species: row.Species})
		}
		groups[wi].Species[si].Values = append(groups[wi].Species[si].Values, row.Value)
	}
	return groups
}
