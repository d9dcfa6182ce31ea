package models

import (
	"testing"
	"time"
)

func TestLeadID(t *testing.T) {
	at := time.Date(2024, time.March, 9, 14, 5, 0, 0, time.UTC)

	if got := LeadID(at, 5); got != "L-2024-005" {
		t.Errorf("LeadID(5) = %q, want L-2024-005", got)
	}
	if got := LeadID(at, 1234); got != "L-2024-1234" {
		t.Errorf("LeadID(1234) = %q, want L-2024-1234", got)
	}
}

func TestLeadRowCells_Order(t *testing.T) {
	at := time.Date(2024, time.March, 9, 14, 5, 0, 0, time.UTC)

	row := LeadRow{
		ID:       "L-2024-001",
		At:       at,
		SalesRep: "Ana",
		Lead: Lead{
			ContactName:    "Jo",
			Organization:   "Acme",
			Phone:          "555",
			Email:          "jo@acme.test",
			Products:       "2x Pump",
			Quantity:       "2",
			Budget:         "1000",
			Timeline:       "Q2",
			NextAction:     "Call",
			NextActionDate: "2024-03-10",
			Notes:          "warm",
		},
	}

	want := []string{
		"L-2024-001", "09-Mar-24", "02:05 PM", "Ana",
		"Jo", "Acme", "555", "jo@acme.test", "2x Pump", "2", "1000", "Q2",
		"New", "Call", "2024-03-10", "warm", "Web",
	}

	got := row.Cells()
	if len(got) != RowWidth {
		t.Fatalf("len(Cells) = %d, want %d", len(got), RowWidth)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, got[i], want[i])
		}
	}
}
