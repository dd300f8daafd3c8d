package mockResultSource

import (
	"fmt"

	"devoTools/resultSource"
)

//MockResultsReader serves Tables[fileName] and ignores the column name.
//If Fail is set, every read returns an error
type MockResultsReader struct {
	Tables map[string][]resultSource.ResultsRow
	Fail   bool
}

func (m MockResultsReader) Read(fileName, _ string) ([]resultSource.ResultsRow, error) {
	if m.Fail {
		return nil, fmt.Errorf("programmed reader failure")
	}
	rows, ok := m.Tables[fileName]
	if !ok {
		return nil, fmt.Errorf("no table %v", fileName)
	}
	return rows, nil
}
