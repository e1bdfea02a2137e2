package service

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"vacancy_report_go/worker/chunker"
)

// ChunkService splits a work-dir CSV into per-year chunk files.
type ChunkService struct {
	workDir string
	chunks  *chunker.Chunker
}

// NewChunkService constructs a ChunkService.
func NewChunkService(workDir, chunksDir string) *ChunkService {
	return &ChunkService{workDir: workDir, chunks: chunker.New(chunksDir)}
}

// Run splits fileName (relative to the work dir) by publication year.
func (s *ChunkService) Run(fileName string) error {
	n, err := s.chunks.Split(filepath.Join(s.workDir, fileName))
	if err != nil {
		return err
	}
	log.Infof("%s: записано файлов по годам: %d", fileName, n)
	return nil
}
