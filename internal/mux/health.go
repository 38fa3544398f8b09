package mux

import "net/http"

type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	MaxHands int    `json:"maxHands"`
}

func (m *Mux) getHealth() http.HandlerFunc {
	payload := healthResponse{
		Status:   "OK",
		Version:  m.version,
		MaxHands: m.config.maxHands,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}
