package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"resume-analyzer-go/internal/types"
)

// frozenClock 固定时钟，"至今"类区间在测试中必须可复现
func frozenClock(year int, month time.Month) Clock {
	return func() time.Time {
		return time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
	}
}

func TestTotalExperienceYears_ClosedRange(t *testing.T) {
	// 2020年1月到2022年12月 = 35个月
	years := TotalExperienceYears("Jan 2020 - Dec 2022", frozenClock(2024, time.January))
	assert.InDelta(t, 2.92, years, 0.001)
}

func TestTotalExperienceYears_PresentUsesClock(t *testing.T) {
	// 2023年3月到冻结的2024年1月 = 10个月
	years := TotalExperienceYears("Mar 2023 - Present", frozenClock(2024, time.January))
	assert.InDelta(t, 0.83, years, 0.001)
}

func TestTotalExperienceYears_MultipleRangesAccumulate(t *testing.T) {
	raw := "Jan 2020 - Dec 2020\nFeb 2021 - Dec 2021"
	// 11 + 10 = 21个月
	years := TotalExperienceYears(raw, frozenClock(2024, time.January))
	assert.InDelta(t, 1.75, years, 0.001)
}

func TestTotalExperienceYears_NegativeRangeIgnored(t *testing.T) {
	// 结束早于开始的区间贡献0，不得为负
	years := TotalExperienceYears("Dec 2022 - 2020", frozenClock(2024, time.January))
	assert.Equal(t, 0.0, years)
}

func TestTotalExperienceYears_NoDates(t *testing.T) {
	years := TotalExperienceYears("tidak ada tanggal di sini", frozenClock(2024, time.January))
	assert.Equal(t, 0.0, years)
}

func TestTotalExperienceYears_IndonesianMonths(t *testing.T) {
	// Agustus 2021 - Sekarang，冻结在2024年1月 = 29个月
	years := TotalExperienceYears("Agustus 2021 - Sekarang", frozenClock(2024, time.January))
	assert.InDelta(t, 2.42, years, 0.001)
}

func TestParseFuzzyDate_YearOnly(t *testing.T) {
	d, err := parseFuzzyDate("2021")
	assert.NoError(t, err)
	assert.Equal(t, 2021, d.Year())
	assert.Equal(t, time.January, d.Month())
}

func TestScoreExperience_WeightedComponents(t *testing.T) {
	annotations := []types.Annotation{
		{Text: "PT Telkom", Label: types.LabelOrg},
		{Text: "Gojek Group", Label: types.LabelOrg},
		{Text: "Jan 2020", Label: types.LabelDate},
		{Text: "Dec 2022", Label: types.LabelDate},
		{Text: "Jakarta", Label: types.LabelLoc},
		{Text: "40%", Label: types.LabelPercent},
	}
	raw := "Developed the billing platform. Managed a team of engineers. Improved uptime."

	// 组织2×3 + 日期2×2 + 地点1×2 + 数值1×2 + 动词3×1.5 + 句子奖励1 = 19.5
	score := ScoreExperience(annotations, raw)
	assert.InDelta(t, 19.5, score, 0.001)
}

func TestScoreExperience_CappedAtMaximum(t *testing.T) {
	var annotations []types.Annotation
	for _, org := range []string{"PT A", "PT B", "PT C", "PT D"} {
		annotations = append(annotations, types.Annotation{Text: org, Label: types.LabelOrg})
	}
	for _, d := range []string{"Jan 2019", "Feb 2020", "Mar 2021", "Apr 2022"} {
		annotations = append(annotations, types.Annotation{Text: d, Label: types.LabelDate})
	}
	for _, l := range []string{"Jakarta", "Bandung", "Surabaya"} {
		annotations = append(annotations, types.Annotation{Text: l, Label: types.LabelLoc})
	}
	for _, n := range []string{"40%", "Rp 5.000.000", "120"} {
		annotations = append(annotations, types.Annotation{Text: n, Label: types.LabelCardinal})
	}

	raw := "Developed. Managed. Led. Created. Optimized. Analyzed. Designed. Built. " +
		"Coordinated. Supervised. Planned. Initiated. Executed. Implemented. Improved."

	score := ScoreExperience(annotations, raw)
	assert.Equal(t, 30.0, score)
}

func TestScoreExperience_EmptyInput(t *testing.T) {
	score := ScoreExperience(nil, "")
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}
