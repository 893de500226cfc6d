package records

import (
	"time"

	"github.com/TFG-DataVet/dvt-back-sub001/internal/domain/records/details"
)

// MedicalRecord es una entrada de la historia clínica de una mascota.
// Nunca se edita en sitio: una corrección crea un registro nuevo que
// apunta al anterior (CorrectsID) y el anterior queda reemplazado (SupersededBy).
type MedicalRecord struct {
	ID    string
	PetID string

	Type   details.MedicalRecordType
	Status details.MedicalRecordStatus // vacío en tipos sin estado
	Detail details.Detail

	RecordedBy string
	RecordedAt time.Time
	UpdatedAt  time.Time

	CorrectsID   string
	SupersededBy string
}

func (r MedicalRecord) Superseded() bool {
	return r.SupersededBy != ""
}

// AllowedActions lista las acciones aplicables ahora mismo.
func (r MedicalRecord) AllowedActions() []details.RecordAction {
	if r.Superseded() {
		return []details.RecordAction{}
	}
	return details.AllowedActions(r.Type, r.Status)
}
