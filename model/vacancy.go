// Package model defines the vacancy record types shared by the query,
// render and report layers.
package model

import (
	"strconv"
	"time"

	"vacancy_report_go/dictionary"
)

// PublishedAtLayout is the timestamp format used by HH.ru CSV exports.
const PublishedAtLayout = "2006-01-02T15:04:05-0700"

// CurrencyToRub is the fixed conversion table used to normalize salaries
// to rubles. It is constant reference data, not runtime configuration.
var CurrencyToRub = map[string]float64{
	"AZN": 35.68,
	"BYR": 23.91,
	"EUR": 59.90,
	"GEL": 21.74,
	"KGS": 0.76,
	"KZT": 0.13,
	"RUR": 1,
	"UAH": 1.64,
	"USD": 60.66,
	"UZS": 0.0055,
}

// ExperienceRank is the fixed total order over the four experience levels.
var ExperienceRank = map[string]int{
	"noExperience": 0,
	"between1And3": 1,
	"between3And6": 2,
	"moreThan6":    3,
}

// Vacancy is one job posting. All fields hold cleaned cell values exactly
// as loaded from the CSV; KeySkills keeps its newline-delimited items.
type Vacancy struct {
	Name           string
	Description    string
	KeySkills      string
	ExperienceID   string
	Premium        string
	EmployerName   string
	SalaryFrom     string
	SalaryTo       string
	SalaryGross    string
	SalaryCurrency string
	AreaName       string
	PublishedAt    string
}

// Field returns the raw value of a canonical field. The synthetic salary
// field has no raw value and resolves to the empty string.
func (v Vacancy) Field(fieldID string) string {
	switch fieldID {
	case dictionary.FieldName:
		return v.Name
	case dictionary.FieldDescription:
		return v.Description
	case dictionary.FieldKeySkills:
		return v.KeySkills
	case dictionary.FieldExperienceID:
		return v.ExperienceID
	case dictionary.FieldPremium:
		return v.Premium
	case dictionary.FieldEmployerName:
		return v.EmployerName
	case dictionary.FieldSalaryFrom:
		return v.SalaryFrom
	case dictionary.FieldSalaryTo:
		return v.SalaryTo
	case dictionary.FieldSalaryGross:
		return v.SalaryGross
	case dictionary.FieldSalaryCurrency:
		return v.SalaryCurrency
	case dictionary.FieldAreaName:
		return v.AreaName
	case dictionary.FieldPublishedAt:
		return v.PublishedAt
	}
	return ""
}

// SetField stores a raw cell value under its canonical field identifier.
// Unknown identifiers are ignored so extra CSV columns do not break loading.
func (v *Vacancy) SetField(fieldID, value string) {
	switch fieldID {
	case dictionary.FieldName:
		v.Name = value
	case dictionary.FieldDescription:
		v.Description = value
	case dictionary.FieldKeySkills:
		v.KeySkills = value
	case dictionary.FieldExperienceID:
		v.ExperienceID = value
	case dictionary.FieldPremium:
		v.Premium = value
	case dictionary.FieldEmployerName:
		v.EmployerName = value
	case dictionary.FieldSalaryFrom:
		v.SalaryFrom = value
	case dictionary.FieldSalaryTo:
		v.SalaryTo = value
	case dictionary.FieldSalaryGross:
		v.SalaryGross = value
	case dictionary.FieldSalaryCurrency:
		v.SalaryCurrency = value
	case dictionary.FieldAreaName:
		v.AreaName = value
	case dictionary.FieldPublishedAt:
		v.PublishedAt = value
	}
}

// Salary bundles the typed salary attributes of a vacancy.
type Salary struct {
	From     float64
	To       float64
	IsGross  bool
	Currency string
}

// Salary parses the raw salary cells into a typed value. The CSV loader
// guarantees the cells are non-empty; unparseable numbers degrade to zero.
func (v Vacancy) Salary() Salary {
	from, _ := strconv.ParseFloat(v.SalaryFrom, 64)
	to, _ := strconv.ParseFloat(v.SalaryTo, 64)
	return Salary{
		From:     from,
		To:       to,
		IsGross:  v.SalaryGross == "True",
		Currency: v.SalaryCurrency,
	}
}

// Rubles is the currency-normalized salary: the average of the range
// bounds times the fixed conversion rate.
func (s Salary) Rubles() float64 {
	return (s.From + s.To) / 2 * CurrencyToRub[s.Currency]
}

// PublishedTime parses the publication timestamp.
func (v Vacancy) PublishedTime() (time.Time, error) {
	return time.Parse(PublishedAtLayout, v.PublishedAt)
}

// PublishedYear extracts the year prefix of the publication timestamp
// without a full parse, mirroring how the stats collector buckets rows.
func (v Vacancy) PublishedYear() (int, error) {
	if len(v.PublishedAt) < 4 {
		return 0, &time.ParseError{Layout: PublishedAtLayout, Value: v.PublishedAt}
	}
	return strconv.Atoi(v.PublishedAt[:4])
}
