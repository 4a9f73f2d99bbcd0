package quiz

import (
	"testing"

	"github.com/cube823/instinct-test/internal/models"
)

func TestInstrumentShape(t *testing.T) {
	if len(Questions) != 20 {
		t.Fatalf("instrument has %d questions, want 20", len(Questions))
	}

	seen := make(map[string]bool)
	axisCounts := make(map[models.Axis]int)
	for _, q := range Questions {
		if q.ID == "" || q.Text == "" {
			t.Errorf("question %q has empty id or text", q.ID)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true

		if q.Axis != models.AxisSurvival && q.Axis != models.AxisReproduction {
			t.Errorf("question %s has invalid axis %s", q.ID, q.Axis)
		}
		axisCounts[q.Axis]++

		if q.Type != TypeScale && q.Type != TypeYesNo {
			t.Errorf("question %s has invalid type %s", q.ID, q.Type)
		}
	}

	if axisCounts[models.AxisSurvival] != 10 {
		t.Errorf("survival axis has %d questions, want 10", axisCounts[models.AxisSurvival])
	}
	if axisCounts[models.AxisReproduction] != 10 {
		t.Errorf("reproduction axis has %d questions, want 10", axisCounts[models.AxisReproduction])
	}
}
