package render_test

import (
	"strings"
	"testing"

	"vacancy_report_go/model"
	"vacancy_report_go/render"
)

func TestProject_LocalizesAndFormats(t *testing.T) {
	v := model.Vacancy{
		Name:           "Программист",
		Description:    "Разработка сервисов",
		KeySkills:      "Python\nSQL",
		ExperienceID:   "between3And6",
		Premium:        "False",
		EmployerName:   "Контур",
		SalaryFrom:     "50000.0",
		SalaryTo:       "70000.0",
		SalaryGross:    "True",
		SalaryCurrency: "USD",
		AreaName:       "Екатеринбург",
		PublishedAt:    "2022-07-17T18:23:06+0300",
	}

	row := render.Project(v)

	want := map[string]string{
		"Название":                 "Программист",
		"Опыт работы":              "От 3 до 6 лет",
		"Премиум-вакансия":         "Нет",
		"Оклад":                    "50 000 - 70 000 (Доллары) (Без вычета налогов)",
		"Дата публикации вакансии": "17.07.2022",
		"Название региона":         "Екатеринбург",
	}
	for label, value := range want {
		if row[label] != value {
			t.Errorf("row[%q] = %q, want %q", label, row[label], value)
		}
	}
}

func TestFormatSalary_NetAndGrouping(t *testing.T) {
	s := model.Salary{From: 1000000, To: 1200000, IsGross: false, Currency: "RUR"}
	got := render.FormatSalary(s)
	want := "1 000 000 - 1 200 000 (Рубли) (С вычетом налогов)"
	if got != want {
		t.Errorf("FormatSalary = %q, want %q", got, want)
	}
}

func TestGroupThousands(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1 000",
		50000:   "50 000",
		1234567: "1 234 567",
	}
	for n, want := range cases {
		if got := render.GroupThousands(n); got != want {
			t.Errorf("GroupThousands(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestFormatDate_UnparseablePassesThrough(t *testing.T) {
	if got := render.FormatDate("совсем не дата"); got != "совсем не дата" {
		t.Errorf("FormatDate on bad input = %q, want pass-through", got)
	}
}

func TestRenderTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("о", 150)
	v := model.Vacancy{
		Name:           long,
		Description:    "x",
		KeySkills:      "x",
		ExperienceID:   "noExperience",
		Premium:        "False",
		EmployerName:   "x",
		SalaryFrom:     "1",
		SalaryTo:       "2",
		SalaryGross:    "False",
		SalaryCurrency: "RUR",
		AreaName:       "x",
		PublishedAt:    "2022-07-17T18:23:06+0300",
	}

	row := render.Project(v)
	if row["Название"] != long {
		t.Fatal("Project must not truncate, truncation is display-only")
	}

	var out strings.Builder
	render.NewTable([]render.Row{row}, []string{"Название"}).Render(&out, 0, 1)
	if strings.Contains(out.String(), long) {
		t.Error("rendered table should truncate values over 100 runes")
	}
	if !strings.Contains(out.String(), "...") {
		t.Error("rendered table should mark truncated values with an ellipsis")
	}
}

func TestRenderNumbersRowsFromOne(t *testing.T) {
	rows := []render.Row{
		{"Название": "a"},
		{"Название": "b"},
		{"Название": "c"},
	}
	var out strings.Builder
	render.NewTable(rows, []string{"Название"}).Render(&out, 1, 3)

	s := out.String()
	if strings.Contains(s, "| 1 ") {
		t.Error("row 1 should be outside the rendered range")
	}
	if !strings.Contains(s, "2") || !strings.Contains(s, "3") {
		t.Error("rows 2 and 3 should be rendered with their absolute numbers")
	}
}
