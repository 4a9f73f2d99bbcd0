package models

import "time"

type Axis string

const (
	AxisSurvival     Axis = "survival"
	AxisReproduction Axis = "reproduction"
	AxisBalanced     Axis = "balanced"
)

var ValidAxes = map[Axis]bool{
	AxisSurvival:     true,
	AxisReproduction: true,
	AxisBalanced:     true,
}

type Intensity string

const (
	IntensityCrazy    Intensity = "crazy"
	IntensityReal     Intensity = "real"
	IntensityHalf     Intensity = "half"
	IntensityBalanced Intensity = "balanced"
)

var ValidIntensities = map[Intensity]bool{
	IntensityCrazy:    true,
	IntensityReal:     true,
	IntensityHalf:     true,
	IntensityBalanced: true,
}

// ResultType is the final 6-way archetype key combining intensity and
// dominant axis. It is the lookup key for all presentation content.
type ResultType string

const (
	TypeCrazySurvival     ResultType = "crazySurvival"
	TypeRealSurvival      ResultType = "realSurvival"
	TypeCrazyReproduction ResultType = "crazyReproduction"
	TypeRealReproduction  ResultType = "realReproduction"
	TypeHalf              ResultType = "half"
	TypeBalanced          ResultType = "balanced"
)

var ValidResultTypes = map[ResultType]bool{
	TypeCrazySurvival:     true,
	TypeRealSurvival:      true,
	TypeCrazyReproduction: true,
	TypeRealReproduction:  true,
	TypeHalf:              true,
	TypeBalanced:          true,
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

var ValidGenders = map[Gender]bool{
	GenderMale:   true,
	GenderFemale: true,
}

// Axis score bounds for a fully answered instrument (10 questions per
// axis, each worth 1-5).
const (
	ScoreMin = 10
	ScoreMax = 50
)

// ── Core Structs ───────────────────────────────────────

// ResultRecord is a completed submission. Records are immutable once
// inserted; Answers and UserAgent are write-only audit fields that no
// read endpoint returns.
type ResultRecord struct {
	ID                string         `json:"id"`
	SurvivalScore     int            `json:"survival_score"`
	ReproductionScore int            `json:"reproduction_score"`
	Intensity         Intensity      `json:"intensity"`
	DominantAxis      Axis           `json:"dominant_axis"`
	ResultType        ResultType     `json:"result_type"`
	Gender            Gender         `json:"gender"`
	Answers           map[string]int `json:"answers,omitempty"`
	UserAgent         string         `json:"-"`
	CreatedAt         time.Time      `json:"created_at"`
}

// ── Request Types ─────────────────────────────────────

type SubmitResultRequest struct {
	SurvivalScore     int            `json:"survival_score"`
	ReproductionScore int            `json:"reproduction_score"`
	Intensity         Intensity      `json:"intensity"`
	DominantAxis      Axis           `json:"dominant_axis"`
	ResultType        ResultType     `json:"result_type"`
	Gender            Gender         `json:"gender"`
	Answers           map[string]int `json:"answers,omitempty"`
}

// ── Response Types ────────────────────────────────────

type SubmitResultResponse struct {
	ID string `json:"id"`
}

// ResultResponse is the public view of a stored record. Raw answers and
// submission metadata are deliberately absent.
type ResultResponse struct {
	ID                string     `json:"id"`
	SurvivalScore     int        `json:"survival_score"`
	ReproductionScore int        `json:"reproduction_score"`
	Intensity         Intensity  `json:"intensity"`
	DominantAxis      Axis       `json:"dominant_axis"`
	ResultType        ResultType `json:"result_type"`
	Gender            Gender     `json:"gender"`
	CreatedAt         time.Time  `json:"created_at"`
}

type StatsResponse struct {
	Total        int                `json:"total"`
	Distribution map[ResultType]int `json:"distribution"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
