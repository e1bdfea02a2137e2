// Package render maps vacancies to their localized display form and
// prints the bounded, column-projected console table.
package render

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"vacancy_report_go/dictionary"
	"vacancy_report_go/model"
)

// DisplayFields is the fixed column order of the projected table. The
// four raw salary columns collapse into the synthetic combined one.
var DisplayFields = []string{
	dictionary.FieldName,
	dictionary.FieldDescription,
	dictionary.FieldKeySkills,
	dictionary.FieldExperienceID,
	dictionary.FieldPremium,
	dictionary.FieldEmployerName,
	dictionary.FieldSalary,
	dictionary.FieldAreaName,
	dictionary.FieldPublishedAt,
}

const (
	grossLabel = "Без вычета налогов"
	netLabel   = "С вычетом налогов"

	displayDateLayout = "02.01.2006"
)

// groupingPrinter formats integers with ruble-style thousands grouping.
var groupingPrinter = message.NewPrinter(language.Russian)

// Row is one projected record: display label → human-readable value.
type Row map[string]string

// Project maps a vacancy to its localized display row. Values are
// untruncated; the table layer cuts them for display only.
func Project(v model.Vacancy) Row {
	row := Row{}
	for _, fieldID := range DisplayFields {
		label, _ := dictionary.Localize(fieldID)

		var value string
		switch fieldID {
		case dictionary.FieldSalary:
			value = FormatSalary(v.Salary())
		case dictionary.FieldExperienceID:
			name, err := dictionary.ExperienceName(v.ExperienceID)
			if err != nil {
				name = v.ExperienceID
			}
			value = name
		case dictionary.FieldPublishedAt:
			value = FormatDate(v.PublishedAt)
		default:
			value = dictionary.BoolName(v.Field(fieldID))
		}
		row[label] = value
	}
	return row
}

// ProjectAll projects every vacancy, keeping order.
func ProjectAll(vacancies []model.Vacancy) []Row {
	rows := make([]Row, len(vacancies))
	for i, v := range vacancies {
		rows[i] = Project(v)
	}
	return rows
}

// FormatSalary renders "50 000 - 70 000 (Доллары) (Без вычета налогов)".
func FormatSalary(s model.Salary) string {
	currency, err := dictionary.CurrencyName(s.Currency)
	if err != nil {
		currency = s.Currency
	}
	tax := netLabel
	if s.IsGross {
		tax = grossLabel
	}
	return GroupThousands(int64(s.From)) + " - " + GroupThousands(int64(s.To)) +
		" (" + currency + ") (" + tax + ")"
}

// FormatDate renders a stored ISO timestamp as DD.MM.YYYY. Values that
// fail to parse are shown as is.
func FormatDate(published string) string {
	t, err := time.Parse(model.PublishedAtLayout, published)
	if err != nil {
		return published
	}
	return t.Format(displayDateLayout)
}

// GroupThousands formats an integer with space-separated thousands
// groups. The Russian locale printer emits non-breaking spaces, which
// are swapped for plain ones to keep console output copyable.
func GroupThousands(n int64) string {
	s := groupingPrinter.Sprintf("%d", n)
	return strings.NewReplacer(" ", " ", " ", " ").Replace(s)
}
