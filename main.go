package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"vacancy_report_go/config"
	"vacancy_report_go/report"
	"vacancy_report_go/repository"
	"vacancy_report_go/service"
)

// Application wires configuration, the repository and the three run
// modes together.
type Application struct {
	cfg *config.GlobalConfig

	repo          repository.VacancyRepository
	tableService  *service.TableService
	reportService *service.ReportService
	chunkService  *service.ChunkService

	in *bufio.Scanner
}

// NewApplication creates an empty application instance.
func NewApplication() *Application {
	return &Application{in: bufio.NewScanner(os.Stdin)}
}

// InitServices loads the configuration and constructs all services.
func (app *Application) InitServices() error {
	cfg, err := config.InitConfig()
	if err != nil {
		return fmt.Errorf("инициализация конфигурации: %w", err)
	}
	app.cfg = cfg

	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	opts, err := report.LoadOptions(cfg.Report.OptionsPath)
	if err != nil {
		return fmt.Errorf("настройки отчёта: %w", err)
	}

	app.repo = repository.NewVacancyRepository(cfg.Table.WorkDir)
	app.tableService = service.NewTableService(app.repo, os.Stdout)
	app.reportService = service.NewReportService(
		app.repo,
		report.NewPDFRenderer(cfg.Report.ChromePath),
		cfg.Report.TemplatePath,
		cfg.Report.OutputDir,
		opts,
	)
	app.chunkService = service.NewChunkService(cfg.Table.WorkDir, cfg.Chunk.ChunksDir)
	return nil
}

// Run executes one mode: table (default), report or chunk.
func (app *Application) Run(mode string) error {
	switch mode {
	case "table":
		return app.runTable()
	case "report":
		return app.runReport()
	case "chunk":
		return app.runChunk()
	}
	return fmt.Errorf("неизвестный режим %q (table | report | chunk)", mode)
}

func (app *Application) runTable() error {
	req := service.TableRequest{
		FileName:  app.prompt("Введите название файла: "),
		Filter:    app.prompt("Введите параметр фильтрации: "),
		SortLabel: app.prompt("Введите параметр сортировки: "),
		SortOrder: app.prompt("Обратный порядок сортировки (Да / Нет): "),
		Range:     app.prompt("Введите диапазон вывода: "),
		Columns:   app.prompt("Введите требуемые столбцы: "),
	}
	return app.tableService.Run(req)
}

func (app *Application) runReport() error {
	fileName := app.prompt("Введите название файла: ")
	profession := app.prompt("Введите название профессии: ")
	return app.reportService.Run(context.Background(), fileName, profession)
}

func (app *Application) runChunk() error {
	return app.chunkService.Run(app.prompt("Введите название файла: "))
}

// prompt prints the question and reads one input line.
func (app *Application) prompt(question string) string {
	fmt.Print(question)
	if !app.in.Scan() {
		return ""
	}
	return strings.TrimRight(app.in.Text(), "\r\n")
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	mode := "table"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	app := NewApplication()
	if err := app.InitServices(); err != nil {
		log.Fatalf("инициализация не удалась: %v", err)
	}

	if err := app.Run(mode); err != nil {
		log.Debugf("завершение с ошибкой: %v", err)
		os.Exit(1)
	}
}
