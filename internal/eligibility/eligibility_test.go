package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func healthy() Questionnaire {
	return Questionnaire{
		Age:          intp(30),
		WeightKg:     floatp(70),
		Hemoglobin:   floatp(14),
		Systolic:     intp(120),
		Diastolic:    intp(80),
		PulseRate:    intp(72),
		TemperatureC: floatp(36.8),
	}
}

func TestEvaluate_AllNormal(t *testing.T) {
	v := Evaluate(healthy())

	assert.True(t, v.Eligible)
	assert.Empty(t, v.Reasons)
	assert.NotNil(t, v.Reasons)
	assert.Equal(t, AllCriteriaMetText, v.Summary())
}

func TestEvaluate_EmptyQuestionnaireIsEligible(t *testing.T) {
	v := Evaluate(Questionnaire{})
	assert.True(t, v.Eligible)
}

func TestEvaluate_SingleRule(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Questionnaire)
		reason string
	}{
		{"age 17", func(q *Questionnaire) { q.Age = intp(17) }, ReasonUnderage},
		{"age 66", func(q *Questionnaire) { q.Age = intp(66) }, ReasonOverage},
		{"weight 49.9", func(q *Questionnaire) { q.WeightKg = floatp(49.9) }, ReasonUnderweight},
		{"hemoglobin 10", func(q *Questionnaire) { q.Hemoglobin = floatp(10) }, ReasonHemoglobin},
		{"systolic 89", func(q *Questionnaire) { q.Systolic = intp(89) }, ReasonSystolic},
		{"systolic 181", func(q *Questionnaire) { q.Systolic = intp(181) }, ReasonSystolic},
		{"diastolic 59", func(q *Questionnaire) { q.Diastolic = intp(59) }, ReasonDiastolic},
		{"diastolic 101", func(q *Questionnaire) { q.Diastolic = intp(101) }, ReasonDiastolic},
		{"pulse 49", func(q *Questionnaire) { q.PulseRate = intp(49) }, ReasonPulse},
		{"pulse 101", func(q *Questionnaire) { q.PulseRate = intp(101) }, ReasonPulse},
		{"temperature 37.6", func(q *Questionnaire) { q.TemperatureC = floatp(37.6) }, ReasonTemperature},
		{"illness", func(q *Questionnaire) { q.RecentIllness = true }, ReasonIllness},
		{"surgery", func(q *Questionnaire) { q.RecentSurgery = true }, ReasonSurgery},
		{"tattoo", func(q *Questionnaire) { q.RecentTattoo = true }, ReasonTattoo},
		{"pregnant", func(q *Questionnaire) { q.Pregnant = true }, ReasonPregnant},
		{"breastfeeding", func(q *Questionnaire) { q.Breastfeeding = true }, ReasonBreastfeed},
		{"medication", func(q *Questionnaire) { q.OnMedication = true }, ReasonMedication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := healthy()
			tt.mutate(&q)

			v := Evaluate(q)

			assert.False(t, v.Eligible)
			assert.Equal(t, []string{tt.reason}, v.Reasons)
		})
	}
}

func TestEvaluate_UnderageReasonMentionsMinimum(t *testing.T) {
	q := healthy()
	q.Age = intp(17)

	v := Evaluate(q)

	assert.False(t, v.Eligible)
	assert.Contains(t, v.Reasons[0], "18")
}

func TestEvaluate_BoundariesPass(t *testing.T) {
	q := Questionnaire{
		Age:          intp(18),
		WeightKg:     floatp(50),
		Hemoglobin:   floatp(12.5),
		Systolic:     intp(180),
		Diastolic:    intp(60),
		PulseRate:    intp(100),
		TemperatureC: floatp(37.5),
	}
	assert.True(t, Evaluate(q).Eligible)

	q.Age = intp(65)
	q.Systolic = intp(90)
	q.Diastolic = intp(100)
	q.PulseRate = intp(50)
	assert.True(t, Evaluate(q).Eligible)
}

func TestEvaluate_ReportsEveryFailure(t *testing.T) {
	q := healthy()
	q.Hemoglobin = floatp(10)
	q.RecentTattoo = true
	q.OnMedication = true

	v := Evaluate(q)

	assert.False(t, v.Eligible)
	assert.Equal(t, []string{ReasonHemoglobin, ReasonTattoo, ReasonMedication}, v.Reasons)
	assert.Equal(t, ReasonHemoglobin+"; "+ReasonTattoo+"; "+ReasonMedication, v.Summary())
}
