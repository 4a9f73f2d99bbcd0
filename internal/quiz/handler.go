package quiz

import (
	"encoding/json"
	"net/http"
)

// HandleQuestions serves the fixed instrument. The list never changes
// between deploys, so it is safe to cache for a day.
func HandleQuestions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(Questions)
}
