package details

import "strings"

// MedicalRecordType identifica la categoría clínica de un registro.
type MedicalRecordType string

const (
	TypeConsultation    MedicalRecordType = "CONSULTATION"
	TypeVaccine         MedicalRecordType = "VACCINE"
	TypeTreatment       MedicalRecordType = "TREATMENT"
	TypeSurgery         MedicalRecordType = "SURGERY"
	TypeWeight          MedicalRecordType = "WEIGHT"
	TypeDiagnosis       MedicalRecordType = "DIAGNOSIS"
	TypeAllergy         MedicalRecordType = "ALLERGY"
	TypeDocument        MedicalRecordType = "DOCUMENT"
	TypeHospitalization MedicalRecordType = "HOSPITALIZATION"
)

// MedicalRecordStatus es el estado de workflow de un registro con estado.
type MedicalRecordStatus string

const (
	StatusActive    MedicalRecordStatus = "ACTIVE"
	StatusFinished  MedicalRecordStatus = "FINISHED"
	StatusCorrected MedicalRecordStatus = "CORRECTED"
	StatusPending   MedicalRecordStatus = "PENDING"
	StatusCancelled MedicalRecordStatus = "CANCELLED"
)

// RecordAction es la entrada del motor de transiciones.
type RecordAction string

const (
	ActionActivate   RecordAction = "ACTIVATE"
	ActionReactive   RecordAction = "REACTIVE"
	ActionSuspend    RecordAction = "SUSPEND"
	ActionFinish     RecordAction = "FINISH"
	ActionMarkNoShow RecordAction = "MARK_NO_SHOW"
	ActionComplete   RecordAction = "COMPLETE"
	ActionDischarge  RecordAction = "DISCHARGE"
)

var validStatuses = map[MedicalRecordStatus]bool{
	StatusActive:    true,
	StatusFinished:  true,
	StatusCorrected: true,
	StatusPending:   true,
	StatusCancelled: true,
}

var validActions = map[RecordAction]bool{
	ActionActivate:   true,
	ActionReactive:   true,
	ActionSuspend:    true,
	ActionFinish:     true,
	ActionMarkNoShow: true,
	ActionComplete:   true,
	ActionDischarge:  true,
}

func (s MedicalRecordStatus) IsValid() bool { return validStatuses[s] }

func (a RecordAction) IsValid() bool { return validActions[a] }

// ParseRecordStatus normaliza (trim + upper) y valida un estado externo.
func ParseRecordStatus(s string) (MedicalRecordStatus, error) {
	st := MedicalRecordStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrUnknownStatus
	}
	return st, nil
}

// ParseRecordAction normaliza (trim + upper) y valida una acción externa.
func ParseRecordAction(s string) (RecordAction, error) {
	a := RecordAction(strings.ToUpper(strings.TrimSpace(s)))
	if !a.IsValid() {
		return "", ErrUnknownAction
	}
	return a, nil
}

// StatusChangeResult es el par (anterior, nuevo) producido por una transición exitosa.
// Solo el motor de transiciones lo construye.
type StatusChangeResult struct {
	previous MedicalRecordStatus
	current  MedicalRecordStatus
}

func (r StatusChangeResult) Previous() MedicalRecordStatus { return r.previous }
func (r StatusChangeResult) Current() MedicalRecordStatus  { return r.current }
