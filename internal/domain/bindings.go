package domain

import "github.com/Vovarama1992/leadsheet/internal/ports"

// Bindings holds the process-wide external clients. A nil field means the
// client could not be built at startup; callers find out at call time.
type Bindings struct {
	LLM   ports.LLMClient
	Sheet ports.LeadSheet
}

func (b Bindings) AIReady() bool         { return b.LLM != nil }
func (b Bindings) SheetsConnected() bool { return b.Sheet != nil }
