package models

import (
	"encoding/json"
	"testing"
)

func TestLeadUnmarshal_ScalarsAsText(t *testing.T) {
	var l Lead
	body := `{"contact_name":"Jo","quantity":5,"budget":1200.5,"phone":null,"notes":true,"products":["Pump","Valve"]}`

	if err := json.Unmarshal([]byte(body), &l); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if l.ContactName != "Jo" {
		t.Errorf("ContactName = %q", l.ContactName)
	}
	if l.Quantity != "5" || l.Budget != "1200.5" {
		t.Errorf("Quantity/Budget = %q / %q, want 5 / 1200.5", l.Quantity, l.Budget)
	}
	if l.Phone != "" {
		t.Errorf("Phone = %q, want empty for null", l.Phone)
	}
	if l.Notes != "true" {
		t.Errorf("Notes = %q, want true", l.Notes)
	}
	if l.Products != `["Pump","Valve"]` {
		t.Errorf("Products = %q", l.Products)
	}
	if l.Email != "" || l.Timeline != "" {
		t.Errorf("missing fields must be empty: %+v", l)
	}
}

func TestLeadUnmarshal_InsideRequest(t *testing.T) {
	var req struct {
		LeadData Lead `json:"lead_data"`
	}

	if err := json.Unmarshal([]byte(`{"lead_data":null}`), &req); err != nil {
		t.Fatalf("null lead_data: %v", err)
	}
	if req.LeadData != (Lead{}) {
		t.Errorf("null lead_data = %+v, want zero", req.LeadData)
	}

	if err := json.Unmarshal([]byte(`{"lead_data":"oops"}`), &req); err == nil {
		t.Error("non-object lead_data must fail")
	}
}
