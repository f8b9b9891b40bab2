// Package eligibility evaluates a self-reported donor questionnaire against
// standard donation thresholds.
package eligibility

// Thresholds for whole-blood donation.
const (
	MinAge          = 18
	MaxAge          = 65
	MinWeightKg     = 50.0
	MinHemoglobin   = 12.5
	MinSystolic     = 90
	MaxSystolic     = 180
	MinDiastolic    = 60
	MaxDiastolic    = 100
	MinPulse        = 50
	MaxPulse        = 100
	MaxTemperatureC = 37.5
)

// Reasons reported for each failed rule.
const (
	ReasonUnderage     = "Must be at least 18 years old"
	ReasonOverage      = "Age above 65 requires medical clearance"
	ReasonUnderweight  = "Weight must be at least 50 kg"
	ReasonHemoglobin   = "Hemoglobin level too low (minimum 12.5 g/dL)"
	ReasonSystolic     = "Blood pressure out of acceptable range"
	ReasonDiastolic    = "Diastolic blood pressure out of range"
	ReasonPulse        = "Pulse rate out of acceptable range (50-100 bpm)"
	ReasonTemperature  = "Body temperature too high"
	ReasonIllness      = "Recent illness - please wait until fully recovered"
	ReasonSurgery      = "Recent surgery - wait period required"
	ReasonTattoo       = "Recent tattoo - 6 month wait period required"
	ReasonPregnant     = "Cannot donate during pregnancy"
	ReasonBreastfeed   = "Cannot donate while breastfeeding"
	ReasonMedication   = "Some medications may affect eligibility - consult with staff"
	AllCriteriaMetText = "All criteria met"
)

// Questionnaire is the self-reported input. Nil metrics were not answered and are not checked.
type Questionnaire struct {
	Age             *int     `json:"age,omitempty"`
	WeightKg        *float64 `json:"weight_kg,omitempty"`
	Hemoglobin      *float64 `json:"hemoglobin,omitempty"`
	Systolic        *int     `json:"blood_pressure_systolic,omitempty"`
	Diastolic       *int     `json:"blood_pressure_diastolic,omitempty"`
	PulseRate       *int     `json:"pulse_rate,omitempty"`
	TemperatureC    *float64 `json:"temperature,omitempty"`
	RecentIllness   bool     `json:"has_recent_illness"`
	RecentSurgery   bool     `json:"has_recent_surgery"`
	RecentTattoo    bool     `json:"has_tattoo_recently"`
	Pregnant        bool     `json:"is_pregnant"`
	Breastfeeding   bool     `json:"is_breastfeeding"`
	OnMedication    bool     `json:"on_medication"`
	MedicationNotes string   `json:"medication_details,omitempty"`
}

// Verdict is the outcome of Evaluate.
type Verdict struct {
	Eligible bool     `json:"eligible"`
	Reasons  []string `json:"reasons"`
}

// Summary joins the reasons for storage, or reports that every criterion passed.
func (v Verdict) Summary() string {
	if len(v.Reasons) == 0 {
		return AllCriteriaMetText
	}
	s := v.Reasons[0]
	for _, r := range v.Reasons[1:] {
		s += "; " + r
	}
	return s
}

type rule struct {
	fails  func(q Questionnaire) bool
	reason string
}

var rules = []rule{
	{func(q Questionnaire) bool { return q.Age != nil && *q.Age < MinAge }, ReasonUnderage},
	{func(q Questionnaire) bool { return q.Age != nil && *q.Age > MaxAge }, ReasonOverage},
	{func(q Questionnaire) bool { return q.WeightKg != nil && *q.WeightKg < MinWeightKg }, ReasonUnderweight},
	{func(q Questionnaire) bool { return q.Hemoglobin != nil && *q.Hemoglobin < MinHemoglobin }, ReasonHemoglobin},
	{func(q Questionnaire) bool { return outside(q.Systolic, MinSystolic, MaxSystolic) }, ReasonSystolic},
	{func(q Questionnaire) bool { return outside(q.Diastolic, MinDiastolic, MaxDiastolic) }, ReasonDiastolic},
	{func(q Questionnaire) bool { return outside(q.PulseRate, MinPulse, MaxPulse) }, ReasonPulse},
	{func(q Questionnaire) bool { return q.TemperatureC != nil && *q.TemperatureC > MaxTemperatureC }, ReasonTemperature},
	{func(q Questionnaire) bool { return q.RecentIllness }, ReasonIllness},
	{func(q Questionnaire) bool { return q.RecentSurgery }, ReasonSurgery},
	{func(q Questionnaire) bool { return q.RecentTattoo }, ReasonTattoo},
	{func(q Questionnaire) bool { return q.Pregnant }, ReasonPregnant},
	{func(q Questionnaire) bool { return q.Breastfeeding }, ReasonBreastfeed},
	{func(q Questionnaire) bool { return q.OnMedication }, ReasonMedication},
}

func outside(v *int, lo, hi int) bool {
	return v != nil && (*v < lo || *v > hi)
}

// Evaluate runs every rule independently and reports each one that fails.
func Evaluate(q Questionnaire) Verdict {
	reasons := make([]string, 0)
	for _, r := range rules {
		if r.fails(q) {
			reasons = append(reasons, r.reason)
		}
	}
	return Verdict{Eligible: len(reasons) == 0, Reasons: reasons}
}
