package stations

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type S2SpoolAudio struct {
	dir string
	log *zap.SugaredLogger
}

// NewS2SpoolAudio writes into dir, or os.TempDir() when dir is empty.
func NewS2SpoolAudio(dir string, log *zap.SugaredLogger) *S2SpoolAudio {
	if dir == "" {
		dir = os.TempDir()
	}
	return &S2SpoolAudio{dir: dir, log: log}
}

// Run writes audio to a file owned by this call only. The returned cleanup
// removes it and must be called on every path once err is nil.
func (s *S2SpoolAudio) Run(audio []byte) (string, func(), error) {
	path := filepath.Join(s.dir, "lead-audio-"+uuid.NewString()+".wav")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return "", nil, fmt.Errorf("create temp audio: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.log.Infof("[S2][CLEANUP-ERR] path=%s err=%v", path, err)
		}
	}

	if _, err := f.Write(audio); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("write temp audio: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close temp audio: %w", err)
	}

	s.log.Infof("[S2][OK] path=%s bytes=%d", path, len(audio))
	return path, cleanup, nil
}
