package details

import "time"

type ConsultationFields struct {
	Reason           string     `json:"reason"`
	Symptoms         []string   `json:"symptoms,omitempty"`
	ClinicalFindings string     `json:"clinical_findings"`
	Diagnosis        string     `json:"diagnosis"`
	TreatmentPlan    string     `json:"treatment_plan"`
	FollowUpRequired bool       `json:"follow_up_required"`
	FollowUpDate     *time.Time `json:"follow_up_date,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

type ConsultationDetails struct {
	f ConsultationFields
	built
}

func (ConsultationDetails) isDetail() {}

func (ConsultationDetails) Kind() MedicalRecordType { return TypeConsultation }

func (d ConsultationDetails) Fields() ConsultationFields {
	out := d.f
	out.Symptoms = cloneStrings(d.f.Symptoms)
	out.FollowUpDate = cloneTime(d.f.FollowUpDate)
	return out
}

func (d ConsultationDetails) Validate(today time.Time) error {
	f := d.f
	if blank(f.Reason) {
		return invalid(TypeConsultation, "reason", "is required")
	}
	for _, s := range f.Symptoms {
		if blank(s) {
			return invalid(TypeConsultation, "symptoms", "must not contain blank entries")
		}
	}
	if blank(f.ClinicalFindings) {
		return invalid(TypeConsultation, "clinical_findings", "is required")
	}
	if blank(f.Diagnosis) {
		return invalid(TypeConsultation, "diagnosis", "is required")
	}
	if blank(f.TreatmentPlan) {
		return invalid(TypeConsultation, "treatment_plan", "is required")
	}
	if f.FollowUpRequired && f.FollowUpDate == nil {
		return invalid(TypeConsultation, "follow_up_date", "is required when a follow-up is required")
	}
	if f.FollowUpDate != nil && beforeDay(*f.FollowUpDate, today) {
		return invalid(TypeConsultation, "follow_up_date", "must not be in the past")
	}
	return nil
}

// CanCorrect compara todo salvo las notas.
func (d ConsultationDetails) CanCorrect(previous Detail) (bool, error) {
	prev, ok := previous.(ConsultationDetails)
	if !ok {
		return false, typeMismatch(TypeConsultation, previous)
	}
	a, b := d.f, prev.f
	return differs(
		a.Reason == b.Reason,
		sameStrings(a.Symptoms, b.Symptoms),
		a.ClinicalFindings == b.ClinicalFindings,
		a.Diagnosis == b.Diagnosis,
		a.TreatmentPlan == b.TreatmentPlan,
		a.FollowUpRequired == b.FollowUpRequired,
		sameOptDay(a.FollowUpDate, b.FollowUpDate),
	), nil
}

func (ConsultationDetails) ApplyAction(MedicalRecordStatus, RecordAction) (StatusChangeResult, error) {
	return rejectStatusAction(TypeConsultation)
}
