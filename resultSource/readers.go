package resultSource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

var ErrMissingColumn = errors.New("column not found in header")

//Column names shared by all result tables
const (
	WorldColumn   = "world"
	SpeciesColumn = "species"
)

//ResultsRow is one (run, world, epoch) record with the raw, still encoded list cells
type ResultsRow struct {
	//Line is the 1-based line number in the source file, header is line 1
	Line    int
	World   string
	Species string
	Values  string
}

//ResultsReader is the common interface providing raw result rows for a metric
type ResultsReader interface {
	//Read returns all rows of fileName using valueColumn as the metric column
	Read(fileName, valueColumn string) ([]ResultsRow, error)
}

//ParseResultsCSV expects a csv table with a header line containing at least the world,species and valueColumn
//columns. Additional columns (run, epoch, ...) are ignored
func ParseResultsCSV(r io.Reader, valueColumn string) ([]ResultsRow, error) {
	csvReader := csv.NewReader(r)
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header : %w", err)
	}
	columnIDX := make(map[string]int, len(header))
	for i, name := range header {
		columnIDX[name] = i
	}
	lookup := func(name string) (int, error) {
		idx, ok := columnIDX[name]
		if !ok {
			return 0, fmt.Errorf("%w : %q (have %v)", ErrMissingColumn, name, header)
		}
		return idx, nil
	}
	worldIDX, err := lookup(WorldColumn)
	if err != nil {
		return nil, err
	}
	speciesIDX, err := lookup(SpeciesColumn)
	if err != nil {
		return nil, err
	}
	valuesIDX, err := lookup(valueColumn)
	if err != nil {
		return nil, err
	}

	rows := make([]ResultsRow, 0)
	for line := 2; ; line++ {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %v : %w", line, err)
		}
		rows = append(rows, ResultsRow{
			Line:    line,
			World:   record[worldIDX],
			Species: record[speciesIDX],
			Values:  record[valuesIDX],
		})
	}
	return rows, nil
}
