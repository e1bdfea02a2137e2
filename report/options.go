package report

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Options tune the generated report. They live in their own yaml file so
// report layout can change without touching the global config.
type Options struct {
	Title       string `yaml:"title"`
	ChartWidth  int    `yaml:"chartWidth"`
	ChartHeight int    `yaml:"chartHeight"`
	ExportPDF   bool   `yaml:"exportPdf"`
}

// DefaultOptions are used when no options file is present.
func DefaultOptions() Options {
	return Options{
		Title:       "Статистика вакансий",
		ChartWidth:  700,
		ChartHeight: 400,
		ExportPDF:   true,
	}
}

// LoadOptions reads the options yaml, falling back to defaults when the
// file does not exist. Unknown keys are ignored.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, err
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	if opts.ChartWidth <= 0 || opts.ChartHeight <= 0 {
		opts.ChartWidth = DefaultOptions().ChartWidth
		opts.ChartHeight = DefaultOptions().ChartHeight
	}
	return opts, nil
}
