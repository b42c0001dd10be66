package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"vehicle-recommender/internal/catalog"
)

type healthResponse struct {
	Status   string    `json:"status"`
	Records  int       `json:"records"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loadedAt"`
}

func Health(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:   "ok",
			Records:  store.Len(),
			Source:   store.Source(),
			LoadedAt: store.LoadedAt(),
		})
	}
}
