package query

import (
	"strings"

	"vacancy_report_go/model"
)

// Matches reports whether a vacancy satisfies every active filter of the
// plan. Absent filters impose no constraint; the predicate is pure and
// reads only raw (untruncated) field values.
func (p *Plan) Matches(v model.Vacancy) bool {
	if p.SalaryReq != nil {
		// The threshold must lie inside the posted salary band. Both
		// bounds are checked against the raw cells, no currency
		// conversion is involved here.
		s := v.Salary()
		if *p.SalaryReq < s.From || *p.SalaryReq > s.To {
			return false
		}
	}

	for fieldID, want := range p.ExactMatch {
		if v.Field(fieldID) != want {
			return false
		}
	}

	for fieldID, items := range p.ItemMatch {
		have := strings.Split(v.Field(fieldID), "\n")
		if !containsAll(have, items) {
			return false
		}
	}

	for fieldID, substr := range p.SubstringMatch {
		if !strings.Contains(v.Field(fieldID), substr) {
			return false
		}
	}

	return true
}

// Filter returns the vacancies retained by the plan, preserving load
// order. The source slice is never mutated.
func (p *Plan) Filter(vacancies []model.Vacancy) []model.Vacancy {
	if !p.HasFilter() {
		return append([]model.Vacancy(nil), vacancies...)
	}
	retained := make([]model.Vacancy, 0, len(vacancies))
	for _, v := range vacancies {
		if p.Matches(v) {
			retained = append(retained, v)
		}
	}
	return retained
}

// containsAll reports whether every wanted item appears in the haystack.
// Order is irrelevant and duplicates are ignored.
func containsAll(have, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[h] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
