// Package repository reads vacancy record sets from CSV files in the
// configured work directory.
package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"vacancy_report_go/dictionary"
	"vacancy_report_go/model"
	"vacancy_report_go/query"
	"vacancy_report_go/utils"
)

// VacancyRepository loads vacancy datasets from flat files.
type VacancyRepository interface {
	Exists(fileName string) bool
	Load(fileName string) (*model.DataSet, error)
}

type csvVacancyRepository struct {
	workDir string
}

// NewVacancyRepository returns a CSV-backed repository rooted at workDir.
func NewVacancyRepository(workDir string) VacancyRepository {
	return &csvVacancyRepository{workDir: workDir}
}

// Exists reports whether fileName names a readable .csv in the work dir.
func (r *csvVacancyRepository) Exists(fileName string) bool {
	if len(fileName) <= 4 || !strings.HasSuffix(fileName, ".csv") {
		return false
	}
	_, err := os.Stat(filepath.Join(r.workDir, fileName))
	return err == nil
}

// Load reads the whole file into memory. The header row names fields by
// canonical identifier; rows with any empty cell or a cell count that
// does not match the header are silently dropped. Cells are cleaned of
// HTML tags and normalized before they reach the query layer.
func (r *csvVacancyRepository) Load(fileName string) (*model.DataSet, error) {
	if !r.Exists(fileName) {
		return nil, fmt.Errorf("%w: %s", query.ErrFileNotFound, fileName)
	}

	f, err := os.Open(filepath.Join(r.workDir, fileName))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", query.ErrFileNotFound, fileName)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // cell count is validated per row below
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("чтение %s: %w", fileName, err)
	}

	if len(records) == 0 {
		return nil, query.ErrEmptyFile
	}
	if len(records) == 1 {
		return nil, query.ErrEmptyDataset
	}

	header := records[0]
	if len(header) > 0 {
		// Exports carry an optional UTF-8 byte-order mark.
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	dropped := 0
	vacancies := make([]model.Vacancy, 0, len(records)-1)
	for _, row := range records[1:] {
		v, ok := buildVacancy(header, row)
		if !ok {
			dropped++
			continue
		}
		vacancies = append(vacancies, v)
	}

	if dropped > 0 {
		log.Debugf("%s: отброшено неполных строк: %d", fileName, dropped)
	}

	return &model.DataSet{FileName: fileName, Vacancies: vacancies}, nil
}

func buildVacancy(header, row []string) (model.Vacancy, bool) {
	var v model.Vacancy
	if len(row) != len(header) {
		return v, false
	}
	for i, cell := range row {
		if cell == "" {
			return v, false
		}
		keepNewlines := header[i] == dictionary.FieldKeySkills
		v.SetField(header[i], utils.CleanCell(cell, keepNewlines))
	}
	return v, true
}
