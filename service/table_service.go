// Package service orchestrates the tool's three run modes over the
// repository, query and render layers.
package service

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"vacancy_report_go/query"
	"vacancy_report_go/render"
	"vacancy_report_go/repository"
)

// TableRequest carries the six raw user inputs of the table mode.
type TableRequest struct {
	FileName  string
	Filter    string
	SortLabel string
	SortOrder string
	Range     string
	Columns   string
}

// TableService runs the interactive query pipeline: validate, load,
// filter, sort, project, paginate and print.
type TableService struct {
	repo repository.VacancyRepository
	out  io.Writer
}

// NewTableService constructs a TableService writing the table and all
// user-facing messages to out.
func NewTableService(repo repository.VacancyRepository, out io.Writer) *TableService {
	return &TableService{repo: repo, out: out}
}

// Run executes one query. Validation failures and empty results are
// reported to the user with their specific message and returned to the
// caller; no partial output is ever produced.
func (s *TableService) Run(req TableRequest) error {
	plan, err := query.Parse(query.Input{
		FileOK:    s.repo.Exists(req.FileName),
		Filter:    req.Filter,
		SortLabel: req.SortLabel,
		SortOrder: req.SortOrder,
		Range:     req.Range,
		Columns:   req.Columns,
	})
	if err != nil {
		fmt.Fprintln(s.out, err)
		return err
	}

	ds, err := s.repo.Load(req.FileName)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return err
	}

	log.Debugf("%s: загружено строк: %d", ds.FileName, len(ds.Vacancies))

	retained := plan.Filter(ds.Vacancies)
	if len(retained) == 0 {
		fmt.Fprintln(s.out, query.ErrNoMatches)
		return query.ErrNoMatches
	}

	plan.Sort(retained)

	rows := render.ProjectAll(retained)
	start, end := render.PageBounds(plan.Indexes, len(rows))
	render.NewTable(rows, plan.Columns).Render(s.out, start, end)
	return nil
}
