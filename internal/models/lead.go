package models

import (
	"bytes"
	"encoding/json"
)

// Lead is the structured record extracted from a sales conversation.
// All fields are free text; missing JSON keys decode to "".
type Lead struct {
	ContactName    string `json:"contact_name"`
	Organization   string `json:"organization"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Products       string `json:"products"`
	Quantity       string `json:"quantity"`
	Budget         string `json:"budget"`
	Timeline       string `json:"timeline"`
	NextAction     string `json:"next_action"`
	NextActionDate string `json:"next_action_date"`
	Notes          string `json:"notes"`
}

const (
	DefaultSalesRep = "Unknown"
	StatusNew       = "New"
	SourceWeb       = "Web"

	DateLayout = "02-Jan-06"
	TimeLayout = "03:04 PM"
)

// UnmarshalJSON accepts any JSON value per field and keeps it as text:
// numbers keep their literal form, null becomes "", objects and arrays
// are stored as compact JSON.
func (l *Lead) UnmarshalJSON(b []byte) error {
	var raw map[string]any

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	*l = Lead{
		ContactName:    text(raw["contact_name"]),
		Organization:   text(raw["organization"]),
		Phone:          text(raw["phone"]),
		Email:          text(raw["email"]),
		Products:       text(raw["products"]),
		Quantity:       text(raw["quantity"]),
		Budget:         text(raw["budget"]),
		Timeline:       text(raw["timeline"]),
		NextAction:     text(raw["next_action"]),
		NextActionDate: text(raw["next_action_date"]),
		Notes:          text(raw["notes"]),
	}
	return nil
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
