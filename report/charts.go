package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"vacancy_report_go/utils"
)

// Chart output file names, referenced by the HTML template.
const (
	SalaryByYearChart = "salary_by_year.png"
	CountByYearChart  = "count_by_year.png"
	SalaryByCityChart = "salary_by_city.png"
	ShareByCityChart  = "share_by_city.png"
)

// RenderCharts writes the four report charts as PNG files into outDir
// and returns their file names in render order.
func RenderCharts(stats *Stats, opts Options, outDir string) ([]string, error) {
	if err := utils.EnsureDir(outDir); err != nil {
		return nil, err
	}

	years := stats.Years()

	renders := []struct {
		name  string
		graph func() error
	}{
		{SalaryByYearChart, func() error {
			return renderYearSeries(
				filepath.Join(outDir, SalaryByYearChart),
				"Уровень зарплат по годам", opts, years,
				series{"средняя з/п", stats.SalaryByYear},
				series{"з/п " + stats.Profession, stats.JobSalaryByYear},
			)
		}},
		{CountByYearChart, func() error {
			return renderYearSeries(
				filepath.Join(outDir, CountByYearChart),
				"Количество вакансий по годам", opts, years,
				series{"количество вакансий", stats.CountByYear},
				series{"количество вакансий " + stats.Profession, stats.JobCountByYear},
			)
		}},
		{SalaryByCityChart, func() error {
			return renderCityBars(filepath.Join(outDir, SalaryByCityChart),
				"Уровень зарплат по городам", opts, stats.SalaryByCity)
		}},
		{ShareByCityChart, func() error {
			return renderCityPie(filepath.Join(outDir, ShareByCityChart),
				"Доля вакансий по городам", opts, stats.ShareByCity)
		}},
	}

	names := make([]string, 0, len(renders))
	for _, r := range renders {
		if err := r.graph(); err != nil {
			return nil, fmt.Errorf("диаграмма %s: %w", r.name, err)
		}
		names = append(names, r.name)
	}
	return names, nil
}

type series struct {
	name   string
	byYear map[int]int
}

func renderYearSeries(path, title string, opts Options, years []int, all ...series) error {
	graph := chart.Chart{
		Title:  title,
		Width:  opts.ChartWidth,
		Height: opts.ChartHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.IntValueFormatter,
		},
	}

	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, s := range all {
		xs := make([]float64, len(years))
		ys := make([]float64, len(years))
		for i, y := range years {
			xs[i] = float64(y)
			ys[i] = float64(s.byYear[y])
			ymin = math.Min(ymin, ys[i])
			ymax = math.Max(ymax, ys[i])
		}
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    s.name,
			XValues: xs,
			YValues: ys,
		})
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	// The renderer rejects a zero-delta axis range. A single-year
	// dataset (a chunker output file) collapses the x-axis, and flat
	// series collapse the y-axis; both get an explicit padded range.
	if len(years) == 1 {
		year := float64(years[0])
		graph.XAxis.Range = &chart.ContinuousRange{Min: year - 1, Max: year + 1}
	}
	if ymin == ymax {
		graph.YAxis.Range = &chart.ContinuousRange{Min: ymin - 1, Max: ymax + 1}
	}

	return renderPNG(path, graph.Render)
}

func renderCityBars(path, title string, opts Options, values []CityValue) error {
	bars := make([]chart.Value, len(values))
	vmin, vmax := math.Inf(1), math.Inf(-1)
	for i, cv := range values {
		bars[i] = chart.Value{Label: cv.City, Value: cv.Value}
		vmin = math.Min(vmin, cv.Value)
		vmax = math.Max(vmax, cv.Value)
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    opts.ChartWidth,
		Height:   opts.ChartHeight,
		BarWidth: 40,
		Bars:     bars,
	}
	// Same zero-delta guard as the year charts: one city, or equal
	// averages everywhere, collapses the value axis.
	if vmin == vmax {
		graph.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: vmax + 1}
	}
	return renderPNG(path, graph.Render)
}

func renderCityPie(path, title string, opts Options, values []CityValue) error {
	slices := make([]chart.Value, len(values))
	for i, cv := range values {
		slices[i] = chart.Value{Label: cv.City, Value: cv.Value}
	}

	graph := chart.PieChart{
		Title:  title,
		Width:  opts.ChartWidth,
		Height: opts.ChartHeight,
		Values: slices,
	}
	return renderPNG(path, graph.Render)
}

func renderPNG(path string, render func(chart.RendererProvider, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render(chart.PNG, f)
}
