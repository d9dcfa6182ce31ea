package ports

import (
	"context"

	"github.com/Vovarama1992/leadsheet/internal/models"
)

type SaveLeadInput struct {
	SalesRep string
	Lead     models.Lead
}

type Health struct {
	AIReady         bool
	SheetsConnected bool
}

type LeadService interface {
	Health() Health
	Extract(ctx context.Context, text string) (map[string]any, error)
	Transcribe(ctx context.Context, audio string) (string, error)
	Save(ctx context.Context, in SaveLeadInput) (string, error)
	TotalLeads(ctx context.Context) int
	Events() <-chan models.LeadEvent
}
