package stations

import (
	"context"
	"time"

	"github.com/Vovarama1992/leadsheet/internal/ports"
	"go.uber.org/zap"
)

type S3Transcribe struct {
	log *zap.SugaredLogger
}

func NewS3Transcribe(log *zap.SugaredLogger) *S3Transcribe {
	return &S3Transcribe{log: log}
}

func (s *S3Transcribe) Run(ctx context.Context, llm ports.LLMClient, path string) (string, error) {
	start := time.Now()
	s.log.Infof("[S3][START] path=%s", path)

	text, err := llm.TranscribeFile(ctx, path)
	if err != nil {
		s.log.Infof("[S3][ERR] dur=%s err=%v", time.Since(start), err)
		return "", err
	}

	s.log.Infof("[S3][OK] chars=%d dur=%s", len(text), time.Since(start))
	return text, nil
}
