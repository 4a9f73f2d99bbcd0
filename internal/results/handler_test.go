package results

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/cube823/instinct-test/internal/models"
)

func newTestRouter(store Store) *mux.Router {
	h := NewHandler(NewService(store))
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/results", h.SubmitResult).Methods("POST")
	api.HandleFunc("/results/{id}", h.GetResult).Methods("GET")
	api.HandleFunc("/stats", h.GetStats).Methods("GET")
	return r
}

func postJSON(t *testing.T, router *mux.Router, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "instinct-test-suite")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *mux.Router, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitAndFetchResult(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store)

	req := validSubmitRequest()
	req.Answers = map[string]int{"S1": 5, "B1": 1}

	w := postJSON(t, router, "/api/results", req)
	if w.Code != http.StatusCreated {
		t.Fatalf("submit status = %d, body %s", w.Code, w.Body.String())
	}

	var created models.SubmitResultResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode submit response: %v", err)
	}
	if len(created.ID) != TokenLength {
		t.Fatalf("id %q has length %d, want %d", created.ID, len(created.ID), TokenLength)
	}

	w = get(router, "/api/results/"+created.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("fetch status = %d, body %s", w.Code, w.Body.String())
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=86400" {
		t.Errorf("Cache-Control = %q", cc)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode fetch response: %v", err)
	}
	if body["result_type"] != "crazySurvival" || body["gender"] != "male" {
		t.Errorf("unexpected body: %v", body)
	}
	if body["survival_score"].(float64) != 45 {
		t.Errorf("survival_score = %v", body["survival_score"])
	}

	// Raw answers and submission metadata are write-only.
	if _, leaked := body["answers"]; leaked {
		t.Error("response leaks raw answers")
	}
	if _, leaked := body["user_agent"]; leaked {
		t.Error("response leaks user agent")
	}
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	mutate := func(fn func(*models.SubmitResultRequest)) models.SubmitResultRequest {
		req := validSubmitRequest()
		fn(&req)
		return req
	}

	tests := []struct {
		name string
		req  models.SubmitResultRequest
	}{
		{"survival score below floor", mutate(func(r *models.SubmitResultRequest) { r.SurvivalScore = 9 })},
		{"survival score above ceiling", mutate(func(r *models.SubmitResultRequest) { r.SurvivalScore = 51 })},
		{"reproduction score below floor", mutate(func(r *models.SubmitResultRequest) { r.ReproductionScore = 0 })},
		{"unknown intensity", mutate(func(r *models.SubmitResultRequest) { r.Intensity = "mega" })},
		{"unknown axis", mutate(func(r *models.SubmitResultRequest) { r.DominantAxis = "lunar" })},
		{"unknown result type", mutate(func(r *models.SubmitResultRequest) { r.ResultType = "crazyLunar" })},
		{"unknown gender", mutate(func(r *models.SubmitResultRequest) { r.Gender = "other" })},
		{"answer out of range", mutate(func(r *models.SubmitResultRequest) { r.Answers = map[string]int{"S1": 7} })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			router := newTestRouter(store)

			w := postJSON(t, router, "/api/results", tt.req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
			}
			if len(store.records) != 0 {
				t.Error("rejected submission must not persist a record")
			}
		})
	}
}

func TestSubmitRejectsMalformedBody(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store)

	req := httptest.NewRequest("POST", "/api/results", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(store.records) != 0 {
		t.Error("malformed submission must not persist a record")
	}
}

func TestGetResultMalformedID(t *testing.T) {
	router := newTestRouter(newFakeStore())

	w := get(router, "/api/results/abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetResultNotFound(t *testing.T) {
	router := newTestRouter(newFakeStore())

	w := get(router, "/api/results/AAAAAAAA")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Error != "Result not found" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestGetStats(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store)

	postJSON(t, router, "/api/results", validSubmitRequest())

	balanced := validSubmitRequest()
	balanced.SurvivalScore = 30
	balanced.ReproductionScore = 30
	balanced.Intensity = models.IntensityBalanced
	balanced.DominantAxis = models.AxisBalanced
	balanced.ResultType = models.TypeBalanced
	postJSON(t, router, "/api/results", balanced)

	w := get(router, "/api/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=60" {
		t.Errorf("Cache-Control = %q", cc)
	}

	var stats models.StatsResponse
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Total != 2 {
		t.Errorf("total = %d, want 2", stats.Total)
	}
	if stats.Distribution[models.TypeCrazySurvival] != 1 || stats.Distribution[models.TypeBalanced] != 1 {
		t.Errorf("distribution = %v", stats.Distribution)
	}
}
