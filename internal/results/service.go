package results

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cube823/instinct-test/internal/models"
)

// statsTTL bounds how stale the aggregate numbers may get. The counts
// only grow, so a short window is harmless and keeps the group-by off
// the hot path.
const statsTTL = 60 * time.Second

type Service struct {
	store Store

	mu       sync.RWMutex
	stats    *models.StatsResponse
	statsAge time.Time
	ttl      time.Duration
}

func NewService(store Store) *Service {
	return &Service{store: store, ttl: statsTTL}
}

// Submit stores a validated submission and returns its new public id.
// Field validation happens at the handler boundary before this point.
func (s *Service) Submit(ctx context.Context, req models.SubmitResultRequest, userAgent string) (string, error) {
	rec := &models.ResultRecord{
		SurvivalScore:     req.SurvivalScore,
		ReproductionScore: req.ReproductionScore,
		Intensity:         req.Intensity,
		DominantAxis:      req.DominantAxis,
		ResultType:        req.ResultType,
		Gender:            req.Gender,
		Answers:           req.Answers,
		UserAgent:         userAgent,
	}

	id, err := s.store.Insert(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("submit result: %w", err)
	}
	return id, nil
}

// Get returns the public view of a stored result. ErrNotFound passes
// through untouched so callers can tell it apart from real failures.
func (s *Service) Get(ctx context.Context, id string) (*models.ResultResponse, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.ResultResponse{
		ID:                rec.ID,
		SurvivalScore:     rec.SurvivalScore,
		ReproductionScore: rec.ReproductionScore,
		Intensity:         rec.Intensity,
		DominantAxis:      rec.DominantAxis,
		ResultType:        rec.ResultType,
		Gender:            rec.Gender,
		CreatedAt:         rec.CreatedAt,
	}, nil
}

// Stats returns the total submission count and per-type distribution,
// served from a short-lived cache. Callers must not mutate the result.
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	s.mu.RLock()
	if s.stats != nil && time.Since(s.statsAge) < s.ttl {
		cached := s.stats
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats total: %w", err)
	}
	dist, err := s.store.CountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats distribution: %w", err)
	}

	stats := &models.StatsResponse{Total: total, Distribution: dist}

	s.mu.Lock()
	s.stats = stats
	s.statsAge = time.Now()
	s.mu.Unlock()

	return stats, nil
}
