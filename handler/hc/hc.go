package hc

import (
	"encoding/json"
	"net/http"
	"time"
)

func Handler(version string) http.Handler {
	launched := time.Now()
	fn := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"version": version,
			"uptime":  time.Since(launched).String(),
		})
	}

	return http.HandlerFunc(fn)
}
