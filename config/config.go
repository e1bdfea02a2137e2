// Package config loads the global tool configuration via viper.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"vacancy_report_go/utils"
)

// GlobalConfig is the root of config/config.yaml.
type GlobalConfig struct {
	Table  TableConfig  `mapstructure:"table"`
	Report ReportConfig `mapstructure:"report"`
	Chunk  ChunkConfig  `mapstructure:"chunk"`
	Log    LogConfig    `mapstructure:"log"`
}

// TableConfig configures the interactive table mode.
type TableConfig struct {
	WorkDir string `mapstructure:"workDir"` // directory holding the vacancy CSV files
}

// ReportConfig configures the statistics report mode.
type ReportConfig struct {
	OutputDir    string `mapstructure:"outputDir"`
	TemplatePath string `mapstructure:"templatePath"`
	OptionsPath  string `mapstructure:"optionsPath"` // report options yaml, optional
	ChromePath   string `mapstructure:"chromePath"`  // chrome binary override for pdf export
}

// ChunkConfig configures the csv chunking mode.
type ChunkConfig struct {
	ChunksDir string `mapstructure:"chunksDir"`
}

// LogConfig configures logrus.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// InitConfig reads config/config.yaml, resolving relative paths against
// the project root so the tool can run from any directory. A missing
// config file falls back to defaults.
func InitConfig() (*GlobalConfig, error) {
	root, err := utils.ProjectRoot()
	if err != nil {
		root = "."
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join(root, "config"))
	viper.AddConfigPath("./config")

	viper.SetDefault("table.workDir", "work_files")
	viper.SetDefault("report.outputDir", "output")
	viper.SetDefault("report.templatePath", "templates/report.html")
	viper.SetDefault("report.optionsPath", "config/report.yaml")
	viper.SetDefault("chunk.chunksDir", "csv_chunks")
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("чтение конфигурации: %w", err)
		}
	}

	var cfg GlobalConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации: %w", err)
	}

	cfg.Table.WorkDir = resolve(root, cfg.Table.WorkDir)
	cfg.Report.OutputDir = resolve(root, cfg.Report.OutputDir)
	cfg.Report.TemplatePath = resolve(root, cfg.Report.TemplatePath)
	cfg.Report.OptionsPath = resolve(root, cfg.Report.OptionsPath)
	cfg.Chunk.ChunksDir = resolve(root, cfg.Chunk.ChunksDir)
	return &cfg, nil
}

func resolve(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
