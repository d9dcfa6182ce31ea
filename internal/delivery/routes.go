package delivery

import (
	"github.com/Vovarama1992/leadsheet/internal/delivery/ws"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, hHealth *HealthHandler, hLead *LeadHandler, hub *ws.Hub) {

	// health
	r.Get("/", hHealth.Root)
	r.Get("/health", hHealth.Health)

	// leads
	r.Post("/api/extract", hLead.Extract)
	r.Post("/api/transcribe", hLead.Transcribe)
	r.Post("/api/save", hLead.Save)
	r.Get("/api/stats", hLead.Stats)

	// live feed of saved leads
	r.Get("/ws/leads", ws.Handler(hub))
}
