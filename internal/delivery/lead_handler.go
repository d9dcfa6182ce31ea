package delivery

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/leadsheet/internal/domain"
	"github.com/Vovarama1992/leadsheet/internal/models"
	"github.com/Vovarama1992/leadsheet/internal/ports"
)

type LeadHandler struct {
	leads ports.LeadService
	log   *logger.ZapLogger
}

func NewLeadHandler(leads ports.LeadService, log *logger.ZapLogger) *LeadHandler {
	return &LeadHandler{
		leads: leads,
		log:   log,
	}
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func (h *LeadHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Log(logger.LogEntry{
		Level:   "error",
		Message: "request failed",
		Fields: map[string]any{
			"path": r.URL.Path,
			"kind": domain.KindOf(err).String(),
		},
		Error: err,
	})
	writeFailure(w, err)
}

// POST /api/extract
func (h *LeadHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	data, err := h.leads.Extract(r.Context(), req.Text)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    data,
	})
}

// POST /api/transcribe
func (h *LeadHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Audio string `json:"audio"`
	}
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	text, err := h.leads.Transcribe(r.Context(), req.Audio)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"text":    text,
	})
}

// POST /api/save
func (h *LeadHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SalesRep string      `json:"sales_rep"`
		LeadData models.Lead `json:"lead_data"`
	}
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	id, err := h.leads.Save(r.Context(), ports.SaveLeadInput{
		SalesRep: req.SalesRep,
		Lead:     req.LeadData,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"lead_id": id,
	})
}

// GET /api/stats
func (h *LeadHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"total_leads": h.leads.TotalLeads(r.Context()),
	})
}
