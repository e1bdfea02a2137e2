// Package dictionary maps canonical HH.ru field identifiers to their
// localized display labels and holds the closed enumerations (currency
// codes, experience levels, yes/no booleans) used by both the query
// layer and the table formatter.
package dictionary

import "fmt"

// Canonical field identifiers as they appear in the CSV header row.
const (
	FieldName           = "name"
	FieldDescription    = "description"
	FieldKeySkills      = "key_skills"
	FieldExperienceID   = "experience_id"
	FieldPremium        = "premium"
	FieldEmployerName   = "employer_name"
	FieldSalaryFrom     = "salary_from"
	FieldSalaryTo       = "salary_to"
	FieldSalaryGross    = "salary_gross"
	FieldSalaryCurrency = "salary_currency"
	FieldAreaName       = "area_name"
	FieldPublishedAt    = "published_at"

	// FieldSalary is the synthetic combined salary column. It never
	// appears in the CSV but is addressable in filters, sorting and
	// column selection.
	FieldSalary = "salary"
)

var fieldLabels = map[string]string{
	FieldName:           "Название",
	FieldDescription:    "Описание",
	FieldKeySkills:      "Навыки",
	FieldExperienceID:   "Опыт работы",
	FieldPremium:        "Премиум-вакансия",
	FieldEmployerName:   "Компания",
	FieldSalaryFrom:     "Нижняя граница вилки оклада",
	FieldSalaryTo:       "Верхняя граница вилки оклада",
	FieldSalaryGross:    "Оклад указан до вычета налогов",
	FieldSalaryCurrency: "Идентификатор валюты оклада",
	FieldAreaName:       "Название региона",
	FieldPublishedAt:    "Дата публикации вакансии",
	FieldSalary:         "Оклад",
}

var currencyNames = map[string]string{
	"AZN": "Манаты",
	"BYR": "Белорусские рубли",
	"EUR": "Евро",
	"GEL": "Грузинский лари",
	"KGS": "Киргизский сом",
	"KZT": "Тенге",
	"RUR": "Рубли",
	"UAH": "Гривны",
	"USD": "Доллары",
	"UZS": "Узбекский сум",
}

var experienceNames = map[string]string{
	"noExperience": "Нет опыта",
	"between1And3": "От 1 года до 3 лет",
	"between3And6": "От 3 до 6 лет",
	"moreThan6":    "Более 6 лет",
}

var boolNames = map[string]string{
	"True":  "Да",
	"False": "Нет",
}

var (
	labelFields     = reverse(fieldLabels)
	currencyCodes   = reverse(currencyNames)
	experienceCodes = reverse(experienceNames)
	boolCodes       = reverse(boolNames)
)

func reverse(m map[string]string) map[string]string {
	r := make(map[string]string, len(m))
	for k, v := range m {
		r[v] = k
	}
	return r
}

// Localize returns the display label for a canonical field identifier.
// The second value reports whether the field is registered.
func Localize(fieldID string) (string, bool) {
	label, ok := fieldLabels[fieldID]
	return label, ok
}

// Canonicalize returns the canonical identifier for a display label.
func Canonicalize(label string) (string, bool) {
	id, ok := labelFields[label]
	return id, ok
}

// KnownLabel reports whether a display label names a registered field.
func KnownLabel(label string) bool {
	_, ok := labelFields[label]
	return ok
}

// CurrencyName translates a 3-letter currency code to its localized name.
func CurrencyName(code string) (string, error) {
	name, ok := currencyNames[code]
	if !ok {
		return "", fmt.Errorf("unknown currency code %q", code)
	}
	return name, nil
}

// ExperienceName translates an experience identifier to its localized label.
func ExperienceName(id string) (string, error) {
	name, ok := experienceNames[id]
	if !ok {
		return "", fmt.Errorf("unknown experience level %q", id)
	}
	return name, nil
}

// BoolName renders a raw "True"/"False" cell as a localized yes/no token.
// Anything else is passed through unchanged, matching the source data
// convention where non-boolean cells keep their value.
func BoolName(raw string) string {
	if name, ok := boolNames[raw]; ok {
		return name
	}
	return raw
}

// NormalizeFilterValue converts a localized filter value (currency name,
// experience label or yes/no token) back to the raw form stored in the
// records. Values outside the three enumerations are returned verbatim.
func NormalizeFilterValue(value string) string {
	if code, ok := currencyCodes[value]; ok {
		return code
	}
	if id, ok := experienceCodes[value]; ok {
		return id
	}
	if raw, ok := boolCodes[value]; ok {
		return raw
	}
	return value
}

// FieldIDs lists every registered canonical identifier, synthetic salary
// included. Order is unspecified.
func FieldIDs() []string {
	ids := make([]string, 0, len(fieldLabels))
	for id := range fieldLabels {
		ids = append(ids, id)
	}
	return ids
}
