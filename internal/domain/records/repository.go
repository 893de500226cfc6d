package records

import (
	"context"
	"time"

	"github.com/TFG-DataVet/dvt-back-sub001/internal/domain/records/details"
)

// Repository persiste registros clínicos.
//
// Las implementaciones devuelven ErrNotFound cuando el registro no existe y
// ErrConflict cuando una escritura condicional pierde contra otra.
type Repository interface {
	Create(ctx context.Context, rec MedicalRecord) error
	GetByID(ctx context.Context, id string) (MedicalRecord, error)
	ListByPet(ctx context.Context, petID string, filter ListFilter) ([]MedicalRecord, error)

	// Supersede inserta next y marca prevID como reemplazado por next.ID en una sola
	// operación. Si prevStatus no es vacío, también actualiza el estado del anterior.
	// Falla con ErrConflict si prevID ya fue reemplazado.
	Supersede(ctx context.Context, prevID string, prevStatus details.MedicalRecordStatus, next MedicalRecord) error

	// UpdateStatus cambia el estado solo si sigue siendo from y el registro no fue reemplazado.
	UpdateStatus(ctx context.Context, id string, from, to details.MedicalRecordStatus, at time.Time) error
}

type ListFilter struct {
	Types             []details.MedicalRecordType
	IncludeSuperseded bool
	Limit             int
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// NormalizedLimit aplica el default y el tope de ListFilter.Limit.
func (f ListFilter) NormalizedLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultListLimit
	case f.Limit > MaxListLimit:
		return MaxListLimit
	default:
		return f.Limit
	}
}
