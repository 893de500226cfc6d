package details

import "time"

type TreatmentFields struct {
	Name string `json:"name"`

	Dosage   string `json:"dosage"`              // "2"
	DoseUnit string `json:"dose_unit,omitempty"` // "ml", "mg", etc.

	Frequency string `json:"frequency"` // texto por ahora: "cada 12h"

	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// TreatmentDetails es un registro con estado (PENDING -> ACTIVE -> FINISHED).
type TreatmentDetails struct {
	f TreatmentFields
	built
}

func (TreatmentDetails) isDetail() {}

func (TreatmentDetails) Kind() MedicalRecordType { return TypeTreatment }

func (d TreatmentDetails) Fields() TreatmentFields {
	out := d.f
	out.EndDate = cloneTime(d.f.EndDate)
	return out
}

func (d TreatmentDetails) Validate(time.Time) error {
	f := d.f
	if blank(f.Name) {
		return invalid(TypeTreatment, "name", "is required")
	}
	if blank(f.Dosage) {
		return invalid(TypeTreatment, "dosage", "is required")
	}
	if blank(f.Frequency) {
		return invalid(TypeTreatment, "frequency", "is required")
	}
	if f.StartDate.IsZero() {
		return invalid(TypeTreatment, "start_date", "is required")
	}
	if f.EndDate != nil && beforeDay(*f.EndDate, f.StartDate) {
		return invalid(TypeTreatment, "end_date", "must not be before start_date")
	}
	return nil
}

func (d TreatmentDetails) CanCorrect(previous Detail) (bool, error) {
	prev, ok := previous.(TreatmentDetails)
	if !ok {
		return false, typeMismatch(TypeTreatment, previous)
	}
	a, b := d.f, prev.f
	return differs(
		a.Name == b.Name,
		a.Dosage == b.Dosage,
		a.DoseUnit == b.DoseUnit,
		a.Frequency == b.Frequency,
		sameDay(a.StartDate, b.StartDate),
		sameOptDay(a.EndDate, b.EndDate),
	), nil
}

func (TreatmentDetails) ApplyAction(current MedicalRecordStatus, action RecordAction) (StatusChangeResult, error) {
	return treatmentTransitions.apply(TypeTreatment, current, action)
}
