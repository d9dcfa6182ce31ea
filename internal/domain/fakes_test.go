package domain_test

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/leadsheet/internal/domain"
	"github.com/Vovarama1992/leadsheet/internal/domain/stations"
	"github.com/Vovarama1992/leadsheet/internal/ports"
	"go.uber.org/zap"
)

type fakeLLM struct {
	reply string
	err   error

	mu          sync.Mutex
	messages    []ports.ChatMessage
	temperature float64
	paths       []string
}

func (f *fakeLLM) Complete(_ context.Context, messages []ports.ChatMessage, temperature float64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = messages
	f.temperature = temperature
	return f.reply, f.err
}

// TranscribeFile echoes the file contents so callers can see which bytes arrived.
func (f *fakeLLM) TranscribeFile(_ context.Context, path string) (string, error) {
	f.mu.Lock()
	f.paths = append(f.paths, path)
	f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type fakeSheet struct {
	mu       sync.Mutex
	rows     [][]string
	readErr  error
	writeErr error
}

func (f *fakeSheet) Rows(context.Context) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := make([][]string, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeSheet) AppendRow(_ context.Context, cells []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.rows = append(f.rows, cells)
	return nil
}

func (f *fakeSheet) last() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[len(f.rows)-1]
}

var errUpstream = errors.New("upstream exploded")

func newService(b domain.Bindings, spoolDir string, opts ...domain.Option) *domain.LeadService {
	sugar := zap.NewNop().Sugar()
	return domain.NewLeadService(
		b,
		logger.NewZapLogger(sugar),
		stations.NewS1DecodeAudio(sugar),
		stations.NewS2SpoolAudio(spoolDir, sugar),
		stations.NewS3Transcribe(sugar),
		opts...,
	)
}

func sheetWithLeads(n int) *fakeSheet {
	s := &fakeSheet{rows: [][]string{{"Lead ID", "Date"}}}
	for i := 0; i < n; i++ {
		s.rows = append(s.rows, []string{"L", "d"})
	}
	return s
}
