// Package chunker splits a large vacancy CSV into per-year chunk files.
package chunker

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"

	"vacancy_report_go/utils"
)

// Chunker writes one <year>_year.csv per publication year found in the
// source file, each carrying the original header row.
type Chunker struct {
	chunksDir string
}

// New returns a Chunker writing into chunksDir.
func New(chunksDir string) *Chunker {
	return &Chunker{chunksDir: chunksDir}
}

// Split reads the source CSV and groups its rows by the year prefix of
// the published_at column (the last column of HH.ru exports). Rows with
// no parseable year are skipped. Returns the number of chunks written.
func (c *Chunker) Split(srcPath string) (int, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("чтение %s: %w", srcPath, err)
	}
	if len(records) < 2 {
		return 0, fmt.Errorf("%s: нет строк для разбиения", srcPath)
	}

	header := records[0]
	byYear := map[int][][]string{}
	skipped := 0
	for _, row := range records[1:] {
		year, ok := rowYear(row)
		if !ok {
			skipped++
			continue
		}
		byYear[year] = append(byYear[year], row)
	}
	if skipped > 0 {
		log.Warnf("%s: пропущено строк без года публикации: %d", srcPath, skipped)
	}

	if err := utils.EnsureDir(c.chunksDir); err != nil {
		return 0, err
	}

	for year, rows := range byYear {
		if err := c.writeChunk(year, header, rows); err != nil {
			return 0, err
		}
	}
	return len(byYear), nil
}

func (c *Chunker) writeChunk(year int, header []string, rows [][]string) error {
	path := filepath.Join(c.chunksDir, fmt.Sprintf("%d_year.csv", year))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func rowYear(row []string) (int, bool) {
	if len(row) == 0 {
		return 0, false
	}
	cell := row[len(row)-1]
	if len(cell) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(cell[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}
