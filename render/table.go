package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"vacancy_report_go/dictionary"
	"vacancy_report_go/utils"
)

const (
	numberHeader  = "№"
	maxColWidth   = 20
	truncateLimit = 100
)

// Table renders projected rows as a console table with a synthetic
// one-based row number column first. The requested columns restrict what
// is shown; row numbering always reflects the full sorted result, so
// pagination slices rows after numbering.
type Table struct {
	headers []string
	rows    []Row
}

// NewTable builds a table over all projected rows. Columns is the list
// of requested display labels; empty means every display column.
func NewTable(rows []Row, columns []string) *Table {
	headers := columns
	if len(headers) == 0 {
		headers = make([]string, 0, len(DisplayFields))
		for _, fieldID := range DisplayFields {
			label, _ := dictionary.Localize(fieldID)
			headers = append(headers, label)
		}
	}
	return &Table{headers: headers, rows: rows}
}

// Render writes the rows in [start, end) to w.
func (t *Table) Render(w io.Writer, start, end int) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(append([]string{numberHeader}, t.headers...))
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetRowLine(true)
	tw.SetColWidth(maxColWidth)

	for i := start; i < end; i++ {
		line := make([]string, 0, len(t.headers)+1)
		line = append(line, strconv.Itoa(i+1))
		for _, label := range t.headers {
			line = append(line, utils.Truncate(t.rows[i][label], truncateLimit))
		}
		tw.Append(line)
	}
	tw.Render()
}
