package mocks

import (
	"devoTools/listCodec"
	mockResultSource "devoTools/mocks/resultSource"
	"devoTools/resultSource"
)

//CreateResultsReader creates a reader serving a single table fileName. Row x belongs to worlds[x] and
//contains the species ids speciesPerRow[x] with values valuesPerRow[x]
func CreateResultsReader(fileName string, worlds []string, speciesPerRow [][]int, valuesPerRow [][]float64) resultSource.ResultsReader {
	rows := make([]resultSource.ResultsRow, len(worlds))
	for i := range worlds {
		rows[i] = resultSource.ResultsRow{
			Line:    i + 2,
			World:   worlds[i],
			Species: listCodec.FormatInts(speciesPerRow[i]),
			Values:  listCodec.FormatFloats(valuesPerRow[i]),
		}
	}
	return &mockResultSource.MockResultsReader{
		Tables: map[string][]resultSource.ResultsRow{fileName: rows},
	}
}
