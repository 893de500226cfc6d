package details

import "time"

type DiagnosisFields struct {
	Condition   string    `json:"condition"`
	Code        string    `json:"code,omitempty"` // p.ej. VeNom
	DiagnosedOn time.Time `json:"diagnosed_on"`
	Chronic     bool      `json:"chronic"`
	Notes       string    `json:"notes,omitempty"`
}

type DiagnosisDetails struct {
	f DiagnosisFields
	built
}

func (DiagnosisDetails) isDetail() {}

func (DiagnosisDetails) Kind() MedicalRecordType { return TypeDiagnosis }

func (d DiagnosisDetails) Fields() DiagnosisFields { return d.f }

func (d DiagnosisDetails) Validate(today time.Time) error {
	if blank(d.f.Condition) {
		return invalid(TypeDiagnosis, "condition", "is required")
	}
	if d.f.DiagnosedOn.IsZero() {
		return invalid(TypeDiagnosis, "diagnosed_on", "is required")
	}
	if afterDay(d.f.DiagnosedOn, today) {
		return invalid(TypeDiagnosis, "diagnosed_on", "must not be in the future")
	}
	return nil
}

func (d DiagnosisDetails) CanCorrect(previous Detail) (bool, error) {
	prev, ok := previous.(DiagnosisDetails)
	if !ok {
		return false, typeMismatch(TypeDiagnosis, previous)
	}
	a, b := d.f, prev.f
	return differs(
		a.Condition == b.Condition,
		a.Code == b.Code,
		sameDay(a.DiagnosedOn, b.DiagnosedOn),
		a.Chronic == b.Chronic,
	), nil
}

func (DiagnosisDetails) ApplyAction(MedicalRecordStatus, RecordAction) (StatusChangeResult, error) {
	return rejectStatusAction(TypeDiagnosis)
}
