package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cube823/instinct-test/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ── Submit ──────────────────────────────────────────────

func (h *Handler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if msg, ok := validateSubmit(req); !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msg})
		return
	}

	id, err := h.service.Submit(r.Context(), req, r.UserAgent())
	if err != nil {
		log.Printf("submit result: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, models.SubmitResultResponse{ID: id})
}

// validateSubmit checks every field against its range or enumeration.
// Nothing is persisted when any check fails. The asserted classification
// is validated against the enums but deliberately not re-derived from
// the scores; the raw answers are kept for re-scoring if that ever
// becomes necessary.
func validateSubmit(req models.SubmitResultRequest) (string, bool) {
	if req.SurvivalScore < models.ScoreMin || req.SurvivalScore > models.ScoreMax {
		return fmt.Sprintf("survival_score must be %d-%d", models.ScoreMin, models.ScoreMax), false
	}
	if req.ReproductionScore < models.ScoreMin || req.ReproductionScore > models.ScoreMax {
		return fmt.Sprintf("reproduction_score must be %d-%d", models.ScoreMin, models.ScoreMax), false
	}
	if !models.ValidIntensities[req.Intensity] {
		return "Invalid intensity", false
	}
	if !models.ValidAxes[req.DominantAxis] {
		return "Invalid dominant_axis", false
	}
	if !models.ValidResultTypes[req.ResultType] {
		return "Invalid result_type", false
	}
	if !models.ValidGenders[req.Gender] {
		return "Invalid gender", false
	}
	for id, v := range req.Answers {
		if v < 1 || v > 5 {
			return fmt.Sprintf("answer %s out of range", id), false
		}
	}
	return "", true
}

// ── Fetch ───────────────────────────────────────────────

func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if len(id) != TokenLength {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid ID"})
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Result not found"})
		return
	}
	if err != nil {
		log.Printf("get result %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		return
	}

	// Records are immutable once created, so shared links can cache hard.
	w.Header().Set("Cache-Control", "public, max-age=86400")
	writeJSON(w, http.StatusOK, resp)
}

// ── Stats ───────────────────────────────────────────────

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		log.Printf("get stats: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
