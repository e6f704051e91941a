package handlers

import (
	"log"
	"net/http"
)

// Health reports whether the store is reachable. The body shape is
// distinct from resource error bodies: it is a liveness probe.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		log.Printf("health check error: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"status": "error"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
