package details

import "time"

type VaccineFields struct {
	VaccineName     string     `json:"vaccine_name"`
	ApplicationDate time.Time  `json:"application_date"`
	NextDoseDate    *time.Time `json:"next_dose_date,omitempty"`
	BatchNumber     string     `json:"batch_number"`
	Manufacturer    string     `json:"manufacturer"`
}

type VaccineDetails struct {
	f VaccineFields
	built
}

func (VaccineDetails) isDetail() {}

func (VaccineDetails) Kind() MedicalRecordType { return TypeVaccine }

func (d VaccineDetails) Fields() VaccineFields {
	out := d.f
	out.NextDoseDate = cloneTime(d.f.NextDoseDate)
	return out
}

func (d VaccineDetails) Validate(today time.Time) error {
	f := d.f
	if blank(f.VaccineName) {
		return invalid(TypeVaccine, "vaccine_name", "is required")
	}
	if f.ApplicationDate.IsZero() {
		return invalid(TypeVaccine, "application_date", "is required")
	}
	if afterDay(f.ApplicationDate, today) {
		return invalid(TypeVaccine, "application_date", "must not be in the future")
	}
	if f.NextDoseDate != nil && beforeDay(*f.NextDoseDate, f.ApplicationDate) {
		return invalid(TypeVaccine, "next_dose_date", "must not be before application_date")
	}
	if blank(f.BatchNumber) {
		return invalid(TypeVaccine, "batch_number", "is required")
	}
	if blank(f.Manufacturer) {
		return invalid(TypeVaccine, "manufacturer", "is required")
	}
	return nil
}

func (d VaccineDetails) CanCorrect(previous Detail) (bool, error) {
	prev, ok := previous.(VaccineDetails)
	if !ok {
		return false, typeMismatch(TypeVaccine, previous)
	}
	a, b := d.f, prev.f
	return differs(
		a.VaccineName == b.VaccineName,
		sameDay(a.ApplicationDate, b.ApplicationDate),
		sameOptDay(a.NextDoseDate, b.NextDoseDate),
		a.BatchNumber == b.BatchNumber,
		a.Manufacturer == b.Manufacturer,
	), nil
}

func (VaccineDetails) ApplyAction(MedicalRecordStatus, RecordAction) (StatusChangeResult, error) {
	return rejectStatusAction(TypeVaccine)
}
