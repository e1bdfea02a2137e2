package query

import (
	"sort"
	"strings"
	"time"

	"vacancy_report_go/model"
)

// compareFunc is a strict three-way comparison over two vacancies.
type compareFunc func(a, b model.Vacancy) int

// comparatorFor selects the ordering strategy for a canonical field id.
// Fields outside the kind table resolve to SortNone and get no
// comparator. Direction is not baked in here; Sort applies it uniformly
// afterwards.
func comparatorFor(fieldID string) compareFunc {
	switch sortKinds[fieldID] {
	case SortNone:
		return nil
	case SortLexical:
		return func(a, b model.Vacancy) int {
			return strings.Compare(a.Field(fieldID), b.Field(fieldID))
		}
	case SortDate:
		return func(a, b model.Vacancy) int {
			at, _ := a.PublishedTime()
			bt, _ := b.PublishedTime()
			return compareTimes(at, bt)
		}
	case SortLineCount:
		return func(a, b model.Vacancy) int {
			return compareInts(
				len(strings.Split(a.Field(fieldID), "\n")),
				len(strings.Split(b.Field(fieldID), "\n")),
			)
		}
	case SortSalary:
		return func(a, b model.Vacancy) int {
			return compareFloats(a.Salary().Rubles(), b.Salary().Rubles())
		}
	case SortExperience:
		return func(a, b model.Vacancy) int {
			return compareInts(
				model.ExperienceRank[a.ExperienceID],
				model.ExperienceRank[b.ExperienceID],
			)
		}
	}
	return nil
}

// Sort orders the vacancies in place according to the plan's sort field
// and direction. An empty sort field keeps load order. The sort is
// stable: equal keys retain their relative order for both directions.
func (p *Plan) Sort(vacancies []model.Vacancy) {
	cmp := comparatorFor(p.SortField)
	if cmp == nil {
		return
	}

	sort.SliceStable(vacancies, func(i, j int) bool {
		c := cmp(vacancies[i], vacancies[j])
		if p.SortDescending {
			return c > 0
		}
		return c < 0
	})
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}
