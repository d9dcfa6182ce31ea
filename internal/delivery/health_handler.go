package delivery

import (
	"net/http"

	"github.com/Vovarama1992/leadsheet/internal/ports"
)

type HealthHandler struct {
	leads ports.LeadService
}

func NewHealthHandler(leads ports.LeadService) *HealthHandler {
	return &HealthHandler{leads: leads}
}

// GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	st := h.leads.Health()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "healthy",
		"ai_ready":         st.AIReady,
		"sheets_connected": st.SheetsConnected,
	})
}
