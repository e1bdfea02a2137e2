package query_test

import (
	"errors"
	"testing"

	"vacancy_report_go/query"
)

func validInput() query.Input {
	return query.Input{FileOK: true}
}

// ── Filter spec ────────────────────────────────────────────────────────────

func TestParse_EmptyFilterIsValid(t *testing.T) {
	plan, err := query.Parse(validInput())
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if plan.HasFilter() {
		t.Error("empty filter spec should produce no filter conditions")
	}
}

func TestParse_MissingSeparatorIsSyntaxError(t *testing.T) {
	in := validInput()
	in.Filter = "justtext"
	_, err := query.Parse(in)
	if !errors.Is(err, query.ErrFilterSyntax) {
		t.Errorf("Parse(justtext) error = %v, want ErrFilterSyntax", err)
	}
}

func TestParse_UnknownFieldIsFieldError(t *testing.T) {
	in := validInput()
	in.Filter = "UnknownField: x"
	_, err := query.Parse(in)
	if !errors.Is(err, query.ErrFilterField) {
		t.Errorf("Parse(UnknownField: x) error = %v, want ErrFilterField", err)
	}
}

func TestParse_ExactFilterTranslatesEnumValues(t *testing.T) {
	cases := []struct {
		filter    string
		fieldID   string
		wantValue string
	}{
		{"Опыт работы: От 3 до 6 лет", "experience_id", "between3And6"},
		{"Идентификатор валюты оклада: Рубли", "salary_currency", "RUR"},
		{"Премиум-вакансия: Да", "premium", "True"},
		{"Название: Программист", "name", "Программист"},
	}
	for _, c := range cases {
		in := validInput()
		in.Filter = c.filter
		plan, err := query.Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.filter, err)
		}
		if got := plan.ExactMatch[c.fieldID]; got != c.wantValue {
			t.Errorf("Parse(%q): ExactMatch[%s] = %q, want %q", c.filter, c.fieldID, got, c.wantValue)
		}
	}
}

func TestParse_SkillsFilterSplitsItems(t *testing.T) {
	in := validInput()
	in.Filter = "Навыки: Python, SQL"
	plan, err := query.Parse(in)
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	items := plan.ItemMatch["key_skills"]
	if len(items) != 2 || items[0] != "Python" || items[1] != "SQL" {
		t.Errorf("ItemMatch[key_skills] = %v, want [Python SQL]", items)
	}
}

func TestParse_DateFilterBecomesISOPrefix(t *testing.T) {
	in := validInput()
	in.Filter = "Дата публикации вакансии: 17.07.2022"
	plan, err := query.Parse(in)
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if got := plan.SubstringMatch["published_at"]; got != "2022-07-17T" {
		t.Errorf("SubstringMatch[published_at] = %q, want 2022-07-17T", got)
	}
}

func TestParse_MalformedDateFailsValidation(t *testing.T) {
	in := validInput()
	in.Filter = "Дата публикации вакансии: 17.07"
	_, err := query.Parse(in)
	if !errors.Is(err, query.ErrFilterSyntax) {
		t.Errorf("malformed date error = %v, want ErrFilterSyntax", err)
	}
}

func TestParse_SalaryFilterParsesThreshold(t *testing.T) {
	in := validInput()
	in.Filter = "Оклад: 100000"
	plan, err := query.Parse(in)
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if plan.SalaryReq == nil || *plan.SalaryReq != 100000 {
		t.Errorf("SalaryReq = %v, want 100000", plan.SalaryReq)
	}
}

func TestParse_UnbucketedLabelConstrainsNothing(t *testing.T) {
	// Known labels with no matching strategy are accepted as-is and
	// produce no condition.
	filters := []string{
		"Нижняя граница вилки оклада: 50000",
		"Верхняя граница вилки оклада: 70000",
		"Оклад указан до вычета налогов: Да",
	}
	for _, filter := range filters {
		in := validInput()
		in.Filter = filter
		plan, err := query.Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", filter, err)
		}
		if plan.HasFilter() {
			t.Errorf("Parse(%q) produced filter conditions, want none", filter)
		}
	}
}

// ── Sort spec ──────────────────────────────────────────────────────────────

func TestParse_SortField(t *testing.T) {
	in := validInput()
	in.SortLabel = "Оклад"
	in.SortOrder = "Да"
	plan, err := query.Parse(in)
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if plan.SortField != "salary" || !plan.SortDescending {
		t.Errorf("plan = {SortField: %q, SortDescending: %v}, want {salary, true}", plan.SortField, plan.SortDescending)
	}
}

func TestParse_InvalidSortField(t *testing.T) {
	in := validInput()
	in.SortLabel = "Чепуха"
	_, err := query.Parse(in)
	if !errors.Is(err, query.ErrSortField) {
		t.Errorf("error = %v, want ErrSortField", err)
	}
}

func TestParse_SortOrder(t *testing.T) {
	cases := []struct {
		order   string
		wantErr bool
		desc    bool
	}{
		{"", false, false},
		{"Нет", false, false},
		{"Да", false, true},
		{"yes", true, false},
		{"да", true, false},
	}
	for _, c := range cases {
		in := validInput()
		in.SortOrder = c.order
		plan, err := query.Parse(in)
		if c.wantErr {
			if !errors.Is(err, query.ErrSortOrder) {
				t.Errorf("Parse(order=%q) error = %v, want ErrSortOrder", c.order, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(order=%q) returned error: %v", c.order, err)
		}
		if plan.SortDescending != c.desc {
			t.Errorf("Parse(order=%q): SortDescending = %v, want %v", c.order, plan.SortDescending, c.desc)
		}
	}
}

// ── Range and columns ──────────────────────────────────────────────────────

func TestParse_Range(t *testing.T) {
	cases := []struct {
		rangeSpec string
		wantErr   bool
		want      []int
	}{
		{"", false, nil},
		{"10", false, []int{10}},
		{"10 20", false, []int{10, 20}},
		{"1 2 3", true, nil},
		{"20 10", true, nil},
		{"10 10", true, nil},
		{"abc", true, nil},
		{"-5", true, nil},
	}
	for _, c := range cases {
		in := validInput()
		in.Range = c.rangeSpec
		plan, err := query.Parse(in)
		if c.wantErr {
			if !errors.Is(err, query.ErrRange) {
				t.Errorf("Parse(range=%q) error = %v, want ErrRange", c.rangeSpec, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(range=%q) returned error: %v", c.rangeSpec, err)
		}
		if len(plan.Indexes) != len(c.want) {
			t.Errorf("Parse(range=%q): Indexes = %v, want %v", c.rangeSpec, plan.Indexes, c.want)
			continue
		}
		for i := range c.want {
			if plan.Indexes[i] != c.want[i] {
				t.Errorf("Parse(range=%q): Indexes = %v, want %v", c.rangeSpec, plan.Indexes, c.want)
			}
		}
	}
}

func TestParse_Columns(t *testing.T) {
	in := validInput()
	in.Columns = "Название, Оклад, Навыки"
	plan, err := query.Parse(in)
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	want := []string{"Название", "Оклад", "Навыки"}
	for i, label := range want {
		if plan.Columns[i] != label {
			t.Fatalf("Columns = %v, want %v", plan.Columns, want)
		}
	}
}

func TestParse_UnknownColumn(t *testing.T) {
	in := validInput()
	in.Columns = "Название, Зарплата"
	_, err := query.Parse(in)
	if !errors.Is(err, query.ErrColumns) {
		t.Errorf("error = %v, want ErrColumns", err)
	}
}

// ── Failure priority ───────────────────────────────────────────────────────

func TestParse_ReportsFirstFailureInPriorityOrder(t *testing.T) {
	everythingWrong := query.Input{
		FileOK:    false,
		Filter:    "justtext",
		SortLabel: "Чепуха",
		SortOrder: "maybe",
		Range:     "9 1",
		Columns:   "Зарплата",
	}

	steps := []struct {
		fix  func(*query.Input)
		want error
	}{
		{func(in *query.Input) {}, query.ErrFileNotFound},
		{func(in *query.Input) { in.FileOK = true }, query.ErrFilterSyntax},
		{func(in *query.Input) { in.Filter = "Чепуха: x" }, query.ErrFilterField},
		{func(in *query.Input) { in.Filter = "" }, query.ErrSortField},
		{func(in *query.Input) { in.SortLabel = "" }, query.ErrSortOrder},
		{func(in *query.Input) { in.SortOrder = "" }, query.ErrRange},
		{func(in *query.Input) { in.Range = "" }, query.ErrColumns},
	}

	in := everythingWrong
	for _, step := range steps {
		step.fix(&in)
		_, err := query.Parse(in)
		if !errors.Is(err, step.want) {
			t.Fatalf("Parse(%+v) error = %v, want %v", in, err, step.want)
		}
	}
}
