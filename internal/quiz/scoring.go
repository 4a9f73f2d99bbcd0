package quiz

import "github.com/cube823/instinct-test/internal/models"

type Scores struct {
	Survival     int `json:"survival"`
	Reproduction int `json:"reproduction"`
}

type Result struct {
	Scores       Scores           `json:"scores"`
	Intensity    models.Intensity `json:"intensity"`
	DominantAxis models.Axis      `json:"dominant_axis"`
}

// Classify sums the answers per axis and maps the pair of sums to an
// intensity tier and dominant axis. Answers are keyed by question id
// with values in 1-5; missing questions simply contribute nothing.
// The function is pure and never fails — range validation is the
// caller's job.
func Classify(answers map[string]int) Result {
	var survival, reproduction int

	// Iterate the instrument, not the answer map, so unknown keys are
	// ignored and absent answers are skipped.
	for _, q := range Questions {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		if q.Axis == models.AxisSurvival {
			survival += v
		} else {
			reproduction += v
		}
	}

	diff := survival - reproduction
	if diff < 0 {
		diff = -diff
	}
	dominantScore := survival
	if reproduction > survival {
		dominantScore = reproduction
	}

	dominantAxis := models.AxisBalanced
	if survival > reproduction {
		dominantAxis = models.AxisSurvival
	} else if reproduction > survival {
		dominantAxis = models.AxisReproduction
	}

	// Tier thresholds. A wide gap alone is not enough for the extreme
	// tiers: the dominant sum must also clear an absolute floor, so two
	// low scores with a large relative gap stay "half".
	var intensity models.Intensity
	switch {
	case diff <= 4:
		intensity = models.IntensityBalanced
		// A lead this small does not count as dominance.
		dominantAxis = models.AxisBalanced
	case diff <= 9:
		intensity = models.IntensityHalf
	case diff >= 15 && dominantScore >= 45:
		intensity = models.IntensityCrazy
	case diff >= 10 && dominantScore >= 35:
		intensity = models.IntensityReal
	default:
		intensity = models.IntensityHalf
	}

	return Result{
		Scores:       Scores{Survival: survival, Reproduction: reproduction},
		Intensity:    intensity,
		DominantAxis: dominantAxis,
	}
}

// TypeKey derives the 6-way archetype key from an intensity tier and
// dominant axis.
func TypeKey(intensity models.Intensity, axis models.Axis) models.ResultType {
	switch intensity {
	case models.IntensityCrazy:
		if axis == models.AxisReproduction {
			return models.TypeCrazyReproduction
		}
		return models.TypeCrazySurvival
	case models.IntensityReal:
		if axis == models.AxisReproduction {
			return models.TypeRealReproduction
		}
		return models.TypeRealSurvival
	case models.IntensityHalf:
		return models.TypeHalf
	default:
		return models.TypeBalanced
	}
}

// ResultType is a convenience combining Classify and TypeKey.
func (r Result) ResultType() models.ResultType {
	return TypeKey(r.Intensity, r.DominantAxis)
}
