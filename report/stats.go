// Package report aggregates salary and vacancy-count statistics by year
// and by city and renders them as charts, an HTML page and a PDF.
package report

import (
	"sort"
	"strings"

	"vacancy_report_go/model"
)

// OthersLabel is the aggregated bucket for cities beyond the top ten.
const OthersLabel = "Другое"

// cityShareLimit excludes cities holding less than 1% of all vacancies.
const cityShareLimit = 0.01

// topCities caps the per-city tables and charts.
const topCities = 10

// CityValue is one ordered city aggregate.
type CityValue struct {
	City  string
	Value float64
}

// Stats holds every aggregate of the statistical report. Year maps are
// dense over the observed year span; profession series are zero-filled
// for years without a match.
type Stats struct {
	Profession string

	SalaryByYear    map[int]int
	JobSalaryByYear map[int]int
	CountByYear     map[int]int
	JobCountByYear  map[int]int

	SalaryByCity []CityValue // average rubles, descending
	ShareByCity  []CityValue // fraction of all vacancies, descending, top 10 + Другое
}

// Years returns the ascending list of years present in the dataset.
func (s *Stats) Years() []int {
	years := make([]int, 0, len(s.SalaryByYear))
	for y := range s.SalaryByYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

type sumCount struct {
	sum   float64
	count int
}

func (a *sumCount) add(v float64) {
	a.sum += v
	a.count++
}

func (a sumCount) avg() int {
	if a.count == 0 {
		return 0
	}
	return int(a.sum / float64(a.count))
}

// Collect computes all aggregates in one pass over the dataset. A row
// counts toward the profession series when the profession name appears
// as a substring of the vacancy name.
func Collect(ds *model.DataSet, profession string) *Stats {
	salaryByYear := map[int]*sumCount{}
	jobSalaryByYear := map[int]*sumCount{}
	countByYear := map[int]int{}
	jobCountByYear := map[int]int{}
	salaryByCity := map[string]*sumCount{}
	countByCity := map[string]int{}

	for _, v := range ds.Vacancies {
		year, err := v.PublishedYear()
		if err != nil {
			continue
		}
		rubles := v.Salary().Rubles()

		accumulate(salaryByYear, year, rubles)
		countByYear[year]++

		if strings.Contains(v.Name, profession) {
			accumulate(jobSalaryByYear, year, rubles)
			jobCountByYear[year]++
		}

		accumulate(salaryByCity, v.AreaName, rubles)
		countByCity[v.AreaName]++
	}

	stats := &Stats{
		Profession:      profession,
		SalaryByYear:    averages(salaryByYear),
		JobSalaryByYear: averages(jobSalaryByYear),
		CountByYear:     countByYear,
		JobCountByYear:  jobCountByYear,
	}

	// Years with no profession match still appear, zero-valued.
	for y := range stats.SalaryByYear {
		if _, ok := stats.JobSalaryByYear[y]; !ok {
			stats.JobSalaryByYear[y] = 0
		}
		if _, ok := stats.JobCountByYear[y]; !ok {
			stats.JobCountByYear[y] = 0
		}
	}

	total := len(ds.Vacancies)
	limit := int(float64(total) * cityShareLimit)

	for city, cnt := range countByCity {
		if cnt < limit {
			delete(salaryByCity, city)
			delete(countByCity, city)
		}
	}

	for city, agg := range salaryByCity {
		stats.SalaryByCity = append(stats.SalaryByCity, CityValue{city, float64(agg.avg())})
	}
	sortCityValues(stats.SalaryByCity)
	if len(stats.SalaryByCity) > topCities {
		stats.SalaryByCity = stats.SalaryByCity[:topCities]
	}

	shares := make([]CityValue, 0, len(countByCity))
	for city, cnt := range countByCity {
		shares = append(shares, CityValue{city, float64(cnt) / float64(total)})
	}
	sortCityValues(shares)
	if len(shares) > topCities {
		var rest float64
		for _, cv := range shares[topCities:] {
			rest += cv.Value
		}
		shares = append(shares[:topCities], CityValue{OthersLabel, rest})
	}
	stats.ShareByCity = shares

	return stats
}

func accumulate[K comparable](m map[K]*sumCount, key K, v float64) {
	agg, ok := m[key]
	if !ok {
		agg = &sumCount{}
		m[key] = agg
	}
	agg.add(v)
}

func averages[K comparable](m map[K]*sumCount) map[K]int {
	out := make(map[K]int, len(m))
	for k, agg := range m {
		out[k] = agg.avg()
	}
	return out
}

// sortCityValues orders descending by value, city name breaking ties so
// the output is deterministic.
func sortCityValues(values []CityValue) {
	sort.Slice(values, func(i, j int) bool {
		if values[i].Value != values[j].Value {
			return values[i].Value > values[j].Value
		}
		return values[i].City < values[j].City
	})
}
