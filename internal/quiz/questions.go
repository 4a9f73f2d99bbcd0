package quiz

import "github.com/cube823/instinct-test/internal/models"

type QuestionType string

const (
	TypeScale QuestionType = "scale"
	TypeYesNo QuestionType = "yesno"
)

type Question struct {
	ID   string       `json:"id"`
	Axis models.Axis  `json:"axis"`
	Text string       `json:"text"`
	Type QuestionType `json:"type"`
}

// Questions is the fixed 20-item instrument in display order. The axes
// alternate so neither instinct dominates a stretch of the test; the
// order affects pacing only, never scoring. Yes/no answers arrive
// already mapped to 5 (yes) and 1 (no).
var Questions = []Question{
	{
		ID:   "S3",
		Axis: models.AxisSurvival,
		Text: "좀비 아포칼립스가 오면 나는 끝까지 살아남을 자신이 있다",
		Type: TypeYesNo,
	},
	{
		ID:   "B1",
		Axis: models.AxisReproduction,
		Text: "외출 전 거울을 안 보면 하루가 불안하다",
		Type: TypeScale,
	},
	{
		ID:   "S1",
		Axis: models.AxisSurvival,
		Text: "통장에 비상금이 없으면 불안해서 잠이 안 온다",
		Type: TypeScale,
	},
	{
		ID:   "B2",
		Axis: models.AxisReproduction,
		Text: "좋아하는 사람 앞에서 나도 모르게 다른 사람이 된다",
		Type: TypeScale,
	},
	{
		ID:   "S6",
		Axis: models.AxisSurvival,
		Text: "위험해 보이는 골목길은 돌아가더라도 피한다",
		Type: TypeScale,
	},
	{
		ID:   "B3",
		Axis: models.AxisReproduction,
		Text: "SNS에 올린 사진 반응이 별로면 슬쩍 삭제한 적이 있다",
		Type: TypeYesNo,
	},
	{
		ID:   "S2",
		Axis: models.AxisSurvival,
		Text: "길을 걸을 때 무의식적으로 도망칠 경로를 파악하고 있다",
		Type: TypeScale,
	},
	{
		ID:   "B4",
		Axis: models.AxisReproduction,
		Text: "매력적인 사람이 옆에 있으면 나도 모르게 자세를 고쳐 앉는다",
		Type: TypeScale,
	},
	{
		ID:   "S4",
		Axis: models.AxisSurvival,
		Text: "먹고 싶은 것보다 몸에 좋은 것을 먼저 고른다",
		Type: TypeScale,
	},
	{
		ID:   "B6",
		Axis: models.AxisReproduction,
		Text: "\"매력 있다\"는 말 한마디면 일주일은 기분 좋게 산다",
		Type: TypeScale,
	},
	{
		ID:   "S5",
		Axis: models.AxisSurvival,
		Text: "경쟁에서 지면 그날 밤 잠이 안 온다",
		Type: TypeScale,
	},
	{
		ID:   "B5",
		Axis: models.AxisReproduction,
		Text: "향수, 옷, 헤어 등 외모 관리에 월 10만 원 이상 쓴다",
		Type: TypeYesNo,
	},
	{
		ID:   "S8",
		Axis: models.AxisSurvival,
		Text: "혼자서도 충분히 잘 살 수 있다는 확신이 있다",
		Type: TypeScale,
	},
	{
		ID:   "B9",
		Axis: models.AxisReproduction,
		Text: "좋아하는 사람의 이성 친구가 은근히 신경 쓰인다",
		Type: TypeScale,
	},
	{
		ID:   "S9",
		Axis: models.AxisSurvival,
		Text: "10년 뒤의 안정이 오늘의 즐거움보다 중요하다",
		Type: TypeScale,
	},
	{
		ID:   "B7",
		Axis: models.AxisReproduction,
		Text: "연애 상대의 외모가 신체보다 더 중요하다",
		Type: TypeYesNo,
	},
	{
		ID:   "S7",
		Axis: models.AxisSurvival,
		Text: "여행 전에 보험, 비상약을 미리 다 챙긴다",
		Type: TypeYesNo,
	},
	{
		ID:   "B8",
		Axis: models.AxisReproduction,
		Text: "사람들 사이에서 주목받고 싶은 욕구가 있다",
		Type: TypeScale,
	},
	{
		ID:   "S10",
		Axis: models.AxisSurvival,
		Text: "세상이 망해도 나만은 살아남을 계획이 있다",
		Type: TypeScale,
	},
	{
		ID:   "B10",
		Axis: models.AxisReproduction,
		Text: "나는 언젠가 꽤 괜찮은 부모가 될 자신이 있다",
		Type: TypeScale,
	},
}
