package model

// DataSet is the in-memory record set loaded from one CSV file. It is
// loaded once per run and never mutated; filtering produces derived
// slices and sorting operates on those.
type DataSet struct {
	FileName  string
	Vacancies []Vacancy
}
