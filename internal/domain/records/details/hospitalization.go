package details

import "time"

type HospitalizationFields struct {
	Reason            string     `json:"reason"`
	Ward              string     `json:"ward,omitempty"`
	AdmittedOn        time.Time  `json:"admitted_on"`
	ExpectedDischarge *time.Time `json:"expected_discharge,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

type HospitalizationDetails struct {
	f HospitalizationFields
	built
}

func (HospitalizationDetails) isDetail() {}

func (HospitalizationDetails) Kind() MedicalRecordType { return TypeHospitalization }

func (d HospitalizationDetails) Fields() HospitalizationFields {
	out := d.f
	out.ExpectedDischarge = cloneTime(d.f.ExpectedDischarge)
	return out
}

func (d HospitalizationDetails) Validate(today time.Time) error {
	f := d.f
	if blank(f.Reason) {
		return invalid(TypeHospitalization, "reason", "is required")
	}
	if f.AdmittedOn.IsZero() {
		return invalid(TypeHospitalization, "admitted_on", "is required")
	}
	if afterDay(f.AdmittedOn, today) {
		return invalid(TypeHospitalization, "admitted_on", "must not be in the future")
	}
	if f.ExpectedDischarge != nil && beforeDay(*f.ExpectedDischarge, f.AdmittedOn) {
		return invalid(TypeHospitalization, "expected_discharge", "must not be before admitted_on")
	}
	return nil
}

func (d HospitalizationDetails) CanCorrect(previous Detail) (bool, error) {
	prev, ok := previous.(HospitalizationDetails)
	if !ok {
		return false, typeMismatch(TypeHospitalization, previous)
	}
	a, b := d.f, prev.f
	return differs(
		a.Reason == b.Reason,
		a.Ward == b.Ward,
		sameDay(a.AdmittedOn, b.AdmittedOn),
		sameOptDay(a.ExpectedDischarge, b.ExpectedDischarge),
	), nil
}

func (HospitalizationDetails) ApplyAction(current MedicalRecordStatus, action RecordAction) (StatusChangeResult, error) {
	return hospitalizationTransitions.apply(TypeHospitalization, current, action)
}
