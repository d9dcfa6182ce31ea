package domain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/leadsheet/internal/domain/stations"
	"github.com/Vovarama1992/leadsheet/internal/models"
	"github.com/Vovarama1992/leadsheet/internal/ports"
	"github.com/Vovarama1992/leadsheet/internal/textutil"
)

type LeadService struct {
	bindings Bindings
	log      *logger.ZapLogger
	now      func() time.Time

	s1 *stations.S1DecodeAudio
	s2 *stations.S2SpoolAudio
	s3 *stations.S3Transcribe

	// serializes the row-count read and the append in Save
	saveMu sync.Mutex
	events chan models.LeadEvent
}

type Option func(*LeadService)

// WithClock replaces time.Now for lead ids and row timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *LeadService) { s.now = now }
}

func NewLeadService(
	bindings Bindings,
	log *logger.ZapLogger,
	s1 *stations.S1DecodeAudio,
	s2 *stations.S2SpoolAudio,
	s3 *stations.S3Transcribe,
	opts ...Option,
) *LeadService {
	s := &LeadService{
		bindings: bindings,
		log:      log,
		now:      time.Now,
		s1:       s1,
		s2:       s2,
		s3:       s3,
		events:   make(chan models.LeadEvent, 100),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LeadService) Events() <-chan models.LeadEvent { return s.events }

func (s *LeadService) Health() ports.Health {
	return ports.Health{
		AIReady:         s.bindings.AIReady(),
		SheetsConnected: s.bindings.SheetsConnected(),
	}
}

// ========================================================================
// EXTRACT
// ========================================================================
func (s *LeadService) Extract(ctx context.Context, text string) (map[string]any, error) {
	const op = "extract"

	if s.bindings.LLM == nil {
		return nil, newError(BindingUnavailable, op, ErrNoLLM)
	}

	reply, err := s.bindings.LLM.Complete(ctx, []ports.ChatMessage{
		{Role: "system", Content: extractPrompt},
		{Role: "user", Content: text},
	}, extractTemperature)
	if err != nil {
		return nil, newError(UpstreamCallFailed, op, err)
	}

	data, err := parseExtraction(reply)
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "unparseable model reply",
			Fields:  map[string]any{"reply": textutil.Trim(reply, 200)},
			Error:   err,
		})
		return nil, newError(ResponseParseFailed, op, err)
	}

	return data, nil
}

// ========================================================================
// TRANSCRIBE
// ========================================================================
func (s *LeadService) Transcribe(ctx context.Context, payload string) (string, error) {
	const op = "transcribe"

	if s.bindings.LLM == nil {
		return "", newError(BindingUnavailable, op, ErrNoLLM)
	}

	audio, err := s.s1.Run(payload)
	if err != nil {
		return "", newError(ResponseParseFailed, op, err)
	}

	path, cleanup, err := s.s2.Run(audio)
	if err != nil {
		return "", newError(UpstreamCallFailed, op, err)
	}
	defer cleanup()

	text, err := s.s3.Run(ctx, s.bindings.LLM, path)
	if err != nil {
		return "", newError(UpstreamCallFailed, op, err)
	}

	return text, nil
}

// ========================================================================
// SAVE
// ========================================================================
func (s *LeadService) Save(ctx context.Context, in ports.SaveLeadInput) (string, error) {
	const op = "save"

	sheet := s.bindings.Sheet
	if sheet == nil {
		return "", newError(BindingUnavailable, op, ErrNoSheet)
	}

	rep := in.SalesRep
	if rep == "" {
		rep = models.DefaultSalesRep
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	rows, err := sheet.Rows(ctx)
	if err != nil {
		return "", newError(UpstreamCallFailed, op, fmt.Errorf("read rows: %w", err))
	}

	now := s.now()
	row := models.LeadRow{
		ID:       models.LeadID(now, len(rows)),
		At:       now,
		SalesRep: rep,
		Lead:     in.Lead,
	}

	if err := sheet.AppendRow(ctx, row.Cells()); err != nil {
		return "", newError(UpstreamCallFailed, op, fmt.Errorf("append row: %w", err))
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "lead saved",
		Fields: map[string]any{
			"leadID":   row.ID,
			"salesRep": rep,
		},
	})

	s.publish(models.LeadEvent{
		LeadID:       row.ID,
		SalesRep:     rep,
		ContactName:  in.Lead.ContactName,
		Organization: in.Lead.Organization,
	})

	return row.ID, nil
}

func (s *LeadService) publish(ev models.LeadEvent) {
	select {
	case s.events <- ev:
	default:
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "lead event dropped: feed buffer full",
			Fields:  map[string]any{"leadID": ev.LeadID},
		})
	}
}

// ========================================================================
// STATS
// ========================================================================

// TotalLeads never fails: a missing sheet or a read error counts as zero.
func (s *LeadService) TotalLeads(ctx context.Context) int {
	if s.bindings.Sheet == nil {
		return 0
	}

	rows, err := s.bindings.Sheet.Rows(ctx)
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "stats read failed",
			Error:   err,
		})
		return 0
	}

	if len(rows) == 0 {
		return 0
	}
	return len(rows) - 1
}
