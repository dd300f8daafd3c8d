package resultSource

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pbnjay/memory"
	log "github.com/sirupsen/logrus"
)

var ErrTooLarge = errors.New("result file exceeds memory budget")

//DirReader reads result tables from folderPath. Tables are loaded completely, so files larger than
//maxBytes are refused
type DirReader struct {
	folderPath string
	maxBytes   int64
}

//NewDirReader allows tables up to half of the total system memory
func NewDirReader(folderPath string) *DirReader {
	return &DirReader{
		folderPath: folderPath,
		maxBytes:   int64(memory.TotalMemory() / 2),
	}
}

//FolderPath returns the directory the tables are read from
func (recv *DirReader) FolderPath() string {
	return recv.folderPath
}

func (recv *DirReader) Read(fileName, valueColumn string) ([]ResultsRow, error) {
	path := filepath.Join(recv.folderPath, fileName)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat result file : %w", err)
	}
	//memory.TotalMemory returns 0 if it cannot be determined
	if recv.maxBytes > 0 && info.Size() > recv.maxBytes {
		return nil, fmt.Errorf("%w : %v has %v bytes, budget is %v", ErrTooLarge, path, info.Size(), recv.maxBytes)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open result file : %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close %v : %v", path, err)
		}
	}()

	rows, err := ParseResultsCSV(bufio.NewReader(f), valueColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %v : %w", path, err)
	}
	log.WithFields(log.Fields{
		"file": path,
		"rows": len(rows),
	}).Debug("loaded result table")
	return rows, nil
}
