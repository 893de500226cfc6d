package details

import "time"

type SurgeryFields struct {
	Procedure    string    `json:"procedure"`
	Surgeon      string    `json:"surgeon"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Anesthesia   string    `json:"anesthesia,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

type SurgeryDetails struct {
	f SurgeryFields
	built
}

func (SurgeryDetails) isDetail() {}

func (SurgeryDetails) Kind() MedicalRecordType { return TypeSurgery }

func (d SurgeryDetails) Fields() SurgeryFields { return d.f }

func (d SurgeryDetails) Validate(time.Time) error {
	if blank(d.f.Procedure) {
		return invalid(TypeSurgery, "procedure", "is required")
	}
	if blank(d.f.Surgeon) {
		return invalid(TypeSurgery, "surgeon", "is required")
	}
	if d.f.ScheduledFor.IsZero() {
		return invalid(TypeSurgery, "scheduled_for", "is required")
	}
	return nil
}

func (d SurgeryDetails) CanCorrect(previous Detail) (bool, error) {
	prev, ok := previous.(SurgeryDetails)
	if !ok {
		return false, typeMismatch(TypeSurgery, previous)
	}
	a, b := d.f, prev.f
	return differs(
		a.Procedure == b.Procedure,
		a.Surgeon == b.Surgeon,
		sameDay(a.ScheduledFor, b.ScheduledFor),
		a.Anesthesia == b.Anesthesia,
	), nil
}

func (SurgeryDetails) ApplyAction(current MedicalRecordStatus, action RecordAction) (StatusChangeResult, error) {
	return surgeryTransitions.apply(TypeSurgery, current, action)
}
