package details

import (
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// kindEntry es el único punto a tocar al agregar un tipo clínico nuevo.
type kindEntry struct {
	// nil = tipo sin estado
	transitions transitionTable
	decode      func(raw json.RawMessage, today time.Time) (Detail, error)
}

// kinds mantiene el orden de declaración (salida estable para Kinds()).
var kinds = []MedicalRecordType{
	TypeConsultation,
	TypeVaccine,
	TypeTreatment,
	TypeSurgery,
	TypeWeight,
	TypeDiagnosis,
	TypeAllergy,
	TypeDocument,
	TypeHospitalization,
}

var registry = map[MedicalRecordType]kindEntry{
	TypeConsultation: {
		decode: func(raw json.RawMessage, today time.Time) (Detail, error) {
			return decodeWith(TypeConsultation, raw, today, newConsultation)
		},
	},
	TypeVaccine: {
		decode: func(raw json.RawMessage, today time.Time) (Detail, error) {
			return decodeWith(TypeVaccine, raw, today, newVaccine)
		},
	},
	TypeTreatment: {
		transitions: treatmentTransitions,
		decode: func(raw json.RawMessage, today time.Time) (Detail, error) {
			return decodeWith(TypeTreatment, raw, today, newTreatment)
		},
	},
	TypeSurgery: {
		transitions: surgeryTransitions,
		decode: func(raw json.RawMessage, today time.Time) (Detail, error) {
			return decodeWith(TypeSurgery, raw, today, newSurgery)
		},
	},
	TypeWeight: {
		decode: func(raw json.RawMessage, today time.Time) (Detail, error) {
			return decodeWith(TypeWeight, raw, today, newWeight)
		},
	},
	TypeDiagnosis: {
		decode: func(raw json.RawMessage, today time.Time) (Detail, error) {
			return decodeWith(TypeDiagnosis, raw, today, newDiagnosis)
		},
	},
	TypeAllergy: {
		decode: func(raw json.RawMessage, today time.Time) (Detail, error) {
			return decodeWith(TypeAllergy, raw, today, newAllergy)
		},
	},
	TypeDocument: {
		decode: func(raw json.RawMessage, today time.Time) (Detail, error) {
			return decodeWith(TypeDocument, raw, today, newDocument)
		},
	},
	TypeHospitalization: {
		transitions: hospitalizationTransitions,
		decode: func(raw json.RawMessage, today time.Time) (Detail, error) {
			return decodeWith(TypeHospitalization, raw, today, newHospitalization)
		},
	},
}

// Kinds devuelve todos los tipos clínicos en orden de declaración.
func Kinds() []MedicalRecordType {
	return slices.Clone(kinds)
}

func (t MedicalRecordType) IsValid() bool {
	_, ok := registry[t]
	return ok
}

// ParseRecordType normaliza (trim + upper) y valida un tipo externo.
func ParseRecordType(s string) (MedicalRecordType, error) {
	t := MedicalRecordType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrUnknownRecordType
	}
	return t, nil
}

// IsStatusBearing indica si el tipo tiene ciclo de vida vía MedicalRecordStatus.
func IsStatusBearing(t MedicalRecordType) bool {
	return registry[t].transitions != nil
}

// ValidInitialStatus: los registros con estado arrancan en PENDING o ACTIVE;
// los registros sin estado no llevan estado.
func ValidInitialStatus(t MedicalRecordType, s MedicalRecordStatus) bool {
	if !IsStatusBearing(t) {
		return s == ""
	}
	return s == StatusPending || s == StatusActive
}

// AllowedActions lista (ordenadas) las acciones válidas para un tipo en un estado.
func AllowedActions(t MedicalRecordType, current MedicalRecordStatus) []RecordAction {
	entry, ok := registry[t]
	if !ok || entry.transitions == nil {
		return []RecordAction{}
	}
	return entry.transitions.actionsFrom(current)
}
