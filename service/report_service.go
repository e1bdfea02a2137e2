package service

import (
	"context"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"vacancy_report_go/report"
	"vacancy_report_go/repository"
)

// ReportService builds the statistical report for one profession:
// aggregates, charts, HTML page and optional PDF export.
type ReportService struct {
	repo         repository.VacancyRepository
	renderer     *report.PDFRenderer
	templatePath string
	outputDir    string
	opts         report.Options
}

// NewReportService constructs a ReportService.
func NewReportService(
	repo repository.VacancyRepository,
	renderer *report.PDFRenderer,
	templatePath, outputDir string,
	opts report.Options,
) *ReportService {
	return &ReportService{
		repo:         repo,
		renderer:     renderer,
		templatePath: templatePath,
		outputDir:    outputDir,
		opts:         opts,
	}
}

// Run loads the dataset, aggregates statistics for the profession and
// writes the charts, the HTML page and (when enabled) the PDF.
func (s *ReportService) Run(ctx context.Context, fileName, profession string) error {
	ds, err := s.repo.Load(fileName)
	if err != nil {
		return err
	}

	stats := report.Collect(ds, profession)
	log.Infof("собрана статистика: %d лет, %d городов", len(stats.SalaryByYear), len(stats.SalaryByCity))

	charts, err := report.RenderCharts(stats, s.opts, s.outputDir)
	if err != nil {
		return err
	}

	htmlPath, err := report.WriteHTML(stats, s.opts, s.templatePath, s.outputDir, charts)
	if err != nil {
		return err
	}
	log.Infof("html отчёт: %s", htmlPath)

	if !s.opts.ExportPDF {
		return nil
	}

	pdfPath := filepath.Join(s.outputDir, report.ReportPDF)
	if err := s.renderer.RenderFile(ctx, htmlPath, pdfPath); err != nil {
		return err
	}
	log.Infof("pdf отчёт: %s", pdfPath)
	return nil
}
