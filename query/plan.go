// Package query turns raw user input into a validated, typed query plan
// and applies it to an in-memory vacancy set: a predicate built from the
// static field classification, a comparator chosen from the static sort
// table and a paginated output range.
package query

import "vacancy_report_go/dictionary"

// Bucket is the matching strategy of a filterable field.
type Bucket int

const (
	BucketExact Bucket = iota
	BucketItems
	BucketSubstring
	BucketRange
)

// SortKind is the ordering strategy of a sortable field.
type SortKind int

const (
	SortNone SortKind = iota
	SortLexical
	SortDate
	SortLineCount
	SortSalary
	SortExperience
)

// fieldBuckets classifies every filterable field exactly once. The table
// is static: a field is never in two buckets and the classification is
// keyed by canonical identity, not display label.
var fieldBuckets = map[string]Bucket{
	dictionary.FieldName:           BucketExact,
	dictionary.FieldDescription:    BucketExact,
	dictionary.FieldEmployerName:   BucketExact,
	dictionary.FieldSalaryCurrency: BucketExact,
	dictionary.FieldExperienceID:   BucketExact,
	dictionary.FieldAreaName:       BucketExact,
	dictionary.FieldPremium:        BucketExact,
	dictionary.FieldKeySkills:      BucketItems,
	dictionary.FieldPublishedAt:    BucketSubstring,
	dictionary.FieldSalary:         BucketRange,
}

// sortKinds maps every sortable field to its comparator. Fields absent
// from the table resolve to SortNone and keep load order.
var sortKinds = map[string]SortKind{
	dictionary.FieldName:           SortLexical,
	dictionary.FieldDescription:    SortLexical,
	dictionary.FieldEmployerName:   SortLexical,
	dictionary.FieldSalaryCurrency: SortLexical,
	dictionary.FieldAreaName:       SortLexical,
	dictionary.FieldPublishedAt:    SortDate,
	dictionary.FieldKeySkills:      SortLineCount,
	dictionary.FieldSalary:         SortSalary,
	dictionary.FieldExperienceID:   SortExperience,
}

// FieldBucket returns a field's matching strategy.
func FieldBucket(fieldID string) (Bucket, bool) {
	b, ok := fieldBuckets[fieldID]
	return b, ok
}

// Plan is a fully validated query: which filter applies to which field,
// how to sort and which slice of the result to project. It is immutable
// once built, there is no shared parser/predicate state.
type Plan struct {
	ExactMatch     map[string]string
	ItemMatch      map[string][]string
	SubstringMatch map[string]string
	SalaryReq      *float64
	SortField      string // canonical id, empty = keep load order
	SortDescending bool
	Indexes        []int    // 0, 1 or 2 one-based bounds
	Columns        []string // display labels, empty = all
}

// HasFilter reports whether any filter condition is active.
func (p *Plan) HasFilter() bool {
	return len(p.ExactMatch) > 0 || len(p.ItemMatch) > 0 ||
		len(p.SubstringMatch) > 0 || p.SalaryReq != nil
}
