package stations

import (
	"encoding/base64"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type S1DecodeAudio struct {
	log *zap.SugaredLogger
}

func NewS1DecodeAudio(log *zap.SugaredLogger) *S1DecodeAudio {
	return &S1DecodeAudio{log: log}
}

// Run decodes a base64 payload, dropping a "data:...;base64," header if present.
func (s *S1DecodeAudio) Run(payload string) ([]byte, error) {
	if i := strings.Index(payload, ","); i >= 0 {
		payload = payload[i+1:]
	}

	audio, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		s.log.Infof("[S1][ERR] base64 len=%d err=%v", len(payload), err)
		return nil, fmt.Errorf("decode audio: %w", err)
	}

	s.log.Infof("[S1][OK] bytes=%d", len(audio))
	return audio, nil
}
