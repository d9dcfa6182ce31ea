package models

// LeadEvent is pushed to live feed subscribers after a lead is saved.
type LeadEvent struct {
	LeadID       string `json:"lead_id"`
	SalesRep     string `json:"sales_rep"`
	ContactName  string `json:"contact_name"`
	Organization string `json:"organization"`
}
