package details

import "time"

type AllergyType string

const (
	AllergyTypeFood          AllergyType = "FOOD"
	AllergyTypeMedication    AllergyType = "MEDICATION"
	AllergyTypeEnvironmental AllergyType = "ENVIRONMENTAL"
	AllergyTypeInsect        AllergyType = "INSECT"
	AllergyTypeContact       AllergyType = "CONTACT"
	AllergyTypeOther         AllergyType = "OTHER"
)

type AllergySeverity string

const (
	SeverityMild        AllergySeverity = "MILD"
	SeverityModerate    AllergySeverity = "MODERATE"
	SeveritySevere      AllergySeverity = "SEVERE"
	SeverityAnaphylaxis AllergySeverity = "ANAPHYLAXIS"
)

var validAllergyTypes = map[AllergyType]bool{
	AllergyTypeFood:          true,
	AllergyTypeMedication:    true,
	AllergyTypeEnvironmental: true,
	AllergyTypeInsect:        true,
	AllergyTypeContact:       true,
	AllergyTypeOther:         true,
}

var validSeverities = map[AllergySeverity]bool{
	SeverityMild:        true,
	SeverityModerate:    true,
	SeveritySevere:      true,
	SeverityAnaphylaxis: true,
}

// AllergyFields son los datos crudos de una alergia (input de la Factory).
type AllergyFields struct {
	Allergen        string          `json:"allergen"`
	AllergyType     AllergyType     `json:"allergy_type"`
	Severity        AllergySeverity `json:"severity"`
	Reactions       []string        `json:"reactions"`
	LifeThreatening bool            `json:"life_threatening"`
	IdentifiedOn    time.Time       `json:"identified_on"`
	Notes           string          `json:"notes,omitempty"`
}

type AllergyDetails struct {
	f AllergyFields
	built
}

func (AllergyDetails) isDetail() {}

func (AllergyDetails) Kind() MedicalRecordType { return TypeAllergy }

func (d AllergyDetails) Fields() AllergyFields {
	out := d.f
	out.Reactions = cloneStrings(d.f.Reactions)
	return out
}

func (d AllergyDetails) Validate(today time.Time) error {
	f := d.f
	if blank(f.Allergen) {
		return invalid(TypeAllergy, "allergen", "is required")
	}
	if !validAllergyTypes[f.AllergyType] {
		return invalid(TypeAllergy, "allergy_type", "is not a supported allergy type")
	}
	if !validSeverities[f.Severity] {
		return invalid(TypeAllergy, "severity", "is not a supported severity")
	}
	if len(f.Reactions) == 0 {
		return invalid(TypeAllergy, "reactions", "must contain at least one reaction")
	}
	for _, r := range f.Reactions {
		if blank(r) {
			return invalid(TypeAllergy, "reactions", "must not contain blank entries")
		}
	}
	if f.IdentifiedOn.IsZero() {
		return invalid(TypeAllergy, "identified_on", "is required")
	}
	if afterDay(f.IdentifiedOn, today) {
		return invalid(TypeAllergy, "identified_on", "must not be in the future")
	}
	if f.Severity == SeverityAnaphylaxis && !f.LifeThreatening {
		return invalid(TypeAllergy, "life_threatening", "must be true when severity is ANAPHYLAXIS")
	}
	return nil
}

// CanCorrect compara todo salvo las notas.
func (d AllergyDetails) CanCorrect(previous Detail) (bool, error) {
	prev, ok := previous.(AllergyDetails)
	if !ok {
		return false, typeMismatch(TypeAllergy, previous)
	}
	a, b := d.f, prev.f
	return differs(
		a.Allergen == b.Allergen,
		a.AllergyType == b.AllergyType,
		a.Severity == b.Severity,
		sameStrings(a.Reactions, b.Reactions),
		a.LifeThreatening == b.LifeThreatening,
		sameDay(a.IdentifiedOn, b.IdentifiedOn),
	), nil
}

func (AllergyDetails) ApplyAction(MedicalRecordStatus, RecordAction) (StatusChangeResult, error) {
	return rejectStatusAction(TypeAllergy)
}
