package query

import (
	"strconv"
	"strings"

	"vacancy_report_go/dictionary"
)

// Input carries the raw user strings exactly as typed. The file name is
// validated by the repository before parsing; its result feeds FileOK so
// the parser can report failures in the fixed priority order.
type Input struct {
	FileOK    bool
	Filter    string
	SortLabel string
	SortOrder string
	Range     string
	Columns   string
}

// Localized sort order tokens.
const (
	orderYes = "Да"
	orderNo  = "Нет"
)

// parser accumulates the independent validation flags. Every check runs
// unconditionally so that the first failing one in priority order can be
// reported deterministically.
type parser struct {
	in   Input
	plan Plan

	filterSyntaxOK bool
	filterFieldOK  bool
	sortFieldOK    bool
	sortOrderOK    bool
	rangeOK        bool
	columnsOK      bool
}

// Parse validates all six inputs and builds the query plan. On failure it
// returns the first applicable error in the fixed priority order:
// file → filter syntax → filter field → sort field → sort order →
// range → columns.
func Parse(in Input) (*Plan, error) {
	p := &parser{
		in: in,
		plan: Plan{
			ExactMatch:     map[string]string{},
			ItemMatch:      map[string][]string{},
			SubstringMatch: map[string]string{},
		},
	}

	p.parseFilter()
	p.parseSort()
	p.parseRange()
	p.parseColumns()

	if err := p.firstError(); err != nil {
		return nil, err
	}
	return &p.plan, nil
}

func (p *parser) firstError() error {
	switch {
	case !p.in.FileOK:
		return ErrFileNotFound
	case !p.filterSyntaxOK:
		return ErrFilterSyntax
	case !p.filterFieldOK:
		return ErrFilterField
	case !p.sortFieldOK:
		return ErrSortField
	case !p.sortOrderOK:
		return ErrSortOrder
	case !p.rangeOK:
		return ErrRange
	case !p.columnsOK:
		return ErrColumns
	}
	return nil
}

// parseFilter interprets the "<Label>: <value>" filter spec. A missing
// ": " separator is a syntax failure, an unknown label a field failure;
// the two stay independently observable.
func (p *parser) parseFilter() {
	if p.in.Filter == "" {
		p.filterSyntaxOK = true
		p.filterFieldOK = true
		return
	}

	label, value, found := strings.Cut(p.in.Filter, ": ")
	if !found {
		return
	}
	p.filterSyntaxOK = true

	fieldID, known := dictionary.Canonicalize(label)
	if !known {
		return
	}
	p.filterFieldOK = true

	bucket, ok := FieldBucket(fieldID)
	if !ok {
		// Known labels outside every bucket (the raw salary bounds and
		// the gross flag) are accepted but constrain nothing.
		return
	}
	switch bucket {
	case BucketExact:
		p.plan.ExactMatch[fieldID] = dictionary.NormalizeFilterValue(value)
	case BucketItems:
		p.plan.ItemMatch[fieldID] = strings.Split(value, ", ")
	case BucketSubstring:
		// The date must be DD.MM.YYYY; it becomes the ISO prefix
		// matched against stored timestamps. A malformed date fails
		// validation instead of being silently skipped.
		parts := strings.Split(value, ".")
		if len(parts) != 3 {
			p.filterSyntaxOK = false
			return
		}
		p.plan.SubstringMatch[fieldID] = parts[2] + "-" + parts[1] + "-" + parts[0] + "T"
	case BucketRange:
		req, err := strconv.ParseFloat(value, 64)
		if err != nil {
			p.filterSyntaxOK = false
			return
		}
		p.plan.SalaryReq = &req
	}
}

func (p *parser) parseSort() {
	p.sortFieldOK = true
	if p.in.SortLabel != "" {
		fieldID, known := dictionary.Canonicalize(p.in.SortLabel)
		if known {
			p.plan.SortField = fieldID
		} else {
			p.sortFieldOK = false
		}
	}

	switch p.in.SortOrder {
	case orderYes:
		p.sortOrderOK = true
		p.plan.SortDescending = true
	case orderNo, "":
		p.sortOrderOK = true
	}
}

// parseRange accepts zero, one or two whitespace-separated non-negative
// integers; with two, the first must be strictly smaller.
func (p *parser) parseRange() {
	p.rangeOK = true
	for _, token := range strings.Fields(p.in.Range) {
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 {
			p.rangeOK = false
			return
		}
		p.plan.Indexes = append(p.plan.Indexes, n)
	}

	if len(p.plan.Indexes) > 2 {
		p.rangeOK = false
	} else if len(p.plan.Indexes) == 2 && p.plan.Indexes[0] >= p.plan.Indexes[1] {
		p.rangeOK = false
	}
}

func (p *parser) parseColumns() {
	p.columnsOK = true
	if p.in.Columns == "" {
		return
	}
	for _, label := range strings.Split(p.in.Columns, ", ") {
		if !dictionary.KnownLabel(label) {
			p.columnsOK = false
			return
		}
		p.plan.Columns = append(p.plan.Columns, label)
	}
}
