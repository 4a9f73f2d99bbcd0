package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/cube823/instinct-test/internal/models"
)

// ErrNotFound reports a lookup of an id that has never been issued. It
// is an expected outcome, not a failure.
var ErrNotFound = errors.New("result not found")

// Store is the persistence collaborator for submitted results. Records
// are insert-only: nothing updates or deletes them.
type Store interface {
	Insert(ctx context.Context, rec *models.ResultRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.ResultRecord, error)
	Count(ctx context.Context) (int, error)
	CountByType(ctx context.Context) (map[models.ResultType]int, error)
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Insert assigns a fresh token and stores the record. On the remote
// chance of a token collision it retries once with a new token.
func (s *PostgresStore) Insert(ctx context.Context, rec *models.ResultRecord) (string, error) {
	var answers any
	if rec.Answers != nil {
		b, err := json.Marshal(rec.Answers)
		if err != nil {
			return "", fmt.Errorf("marshal answers: %w", err)
		}
		answers = b
	}

	for attempt := 0; ; attempt++ {
		id, err := NewToken()
		if err != nil {
			return "", fmt.Errorf("generate token: %w", err)
		}

		_, err = s.db.ExecContext(ctx,
			`INSERT INTO results
			 (id, survival_score, reproduction_score, intensity, dominant_axis, result_type, gender, answers, user_agent)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			id, rec.SurvivalScore, rec.ReproductionScore, rec.Intensity,
			rec.DominantAxis, rec.ResultType, rec.Gender, answers, rec.UserAgent,
		)
		if err == nil {
			return id, nil
		}

		var pqErr *pq.Error
		if attempt == 0 && errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			continue
		}
		return "", fmt.Errorf("insert result: %w", err)
	}
}

// GetByID fetches the public fields of a record. Answers and user agent
// are write-only and never read back out.
func (s *PostgresStore) GetByID(ctx context.Context, id string) (*models.ResultRecord, error) {
	var rec models.ResultRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT id, survival_score, reproduction_score, intensity, dominant_axis, result_type, gender, created_at
		 FROM results WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.SurvivalScore, &rec.ReproductionScore, &rec.Intensity,
		&rec.DominantAxis, &rec.ResultType, &rec.Gender, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}
	return &rec, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return total, nil
}

func (s *PostgresStore) CountByType(ctx context.Context) (map[models.ResultType]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT result_type, COUNT(*) FROM results GROUP BY result_type`)
	if err != nil {
		return nil, fmt.Errorf("count by type: %w", err)
	}
	defer rows.Close()

	dist := make(map[models.ResultType]int)
	for rows.Next() {
		var rt models.ResultType
		var n int
		if err := rows.Scan(&rt, &n); err != nil {
			return nil, fmt.Errorf("scan distribution row: %w", err)
		}
		dist[rt] = n
	}
	return dist, rows.Err()
}
