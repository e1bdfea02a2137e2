package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"vacancy_report_go/render"
)

// ReportHTML is the generated page file name.
const ReportHTML = "report.html"

type yearRow struct {
	Year      int
	Salary    int
	JobSalary int
	Count     int
	JobCount  int
}

type cityRow struct {
	City  string
	Value string
}

type htmlData struct {
	Title      string
	Profession string
	YearRows   []yearRow
	SalaryRows []cityRow
	ShareRows  []cityRow
	Charts     []string
}

// WriteHTML renders the statistics page from the template into outDir
// and returns the absolute path of the generated file.
func WriteHTML(stats *Stats, opts Options, templatePath, outDir string, charts []string) (string, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("шаблон отчёта: %w", err)
	}

	data := htmlData{
		Title:      opts.Title,
		Profession: stats.Profession,
		Charts:     charts,
	}
	for _, y := range stats.Years() {
		data.YearRows = append(data.YearRows, yearRow{
			Year:      y,
			Salary:    stats.SalaryByYear[y],
			JobSalary: stats.JobSalaryByYear[y],
			Count:     stats.CountByYear[y],
			JobCount:  stats.JobCountByYear[y],
		})
	}
	for _, cv := range stats.SalaryByCity {
		data.SalaryRows = append(data.SalaryRows, cityRow{
			City:  cv.City,
			Value: render.GroupThousands(int64(cv.Value)),
		})
	}
	for _, cv := range stats.ShareByCity {
		data.ShareRows = append(data.ShareRows, cityRow{
			City:  cv.City,
			Value: fmt.Sprintf("%.2f%%", cv.Value*100),
		})
	}

	path, err := filepath.Abs(filepath.Join(outDir, ReportHTML))
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return "", fmt.Errorf("генерация html: %w", err)
	}
	return path, nil
}
