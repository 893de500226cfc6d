package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/TFG-DataVet/dvt-back-sub001/internal/domain/records"
	"github.com/TFG-DataVet/dvt-back-sub001/internal/domain/records/details"
)

// recordRepo guarda los registros tal cual: los detalles son valores inmutables.
// El mutex serializa las escrituras condicionales (Supersede / UpdateStatus).
type recordRepo struct {
	mu   sync.RWMutex
	byID map[string]records.MedicalRecord
}

func NewRecordRepo() records.Repository {
	return &recordRepo{
		byID: make(map[string]records.MedicalRecord),
	}
}

func (r *recordRepo) Create(ctx context.Context, rec records.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("record already exists")
	}
	if err := details.CheckBuilt(rec.Detail); err != nil {
		return err
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *recordRepo) GetByID(ctx context.Context, id string) (records.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return records.MedicalRecord{}, records.ErrNotFound
	}
	return rec, nil
}

func (r *recordRepo) ListByPet(ctx context.Context, petID string, filter records.ListFilter) ([]records.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]records.MedicalRecord, 0)
	for _, rec := range r.byID {
		if rec.PetID != petID {
			continue
		}
		if len(filter.Types) > 0 && !slices.Contains(filter.Types, rec.Type) {
			continue
		}
		if rec.Superseded() && !filter.IncludeSuperseded {
			continue
		}
		out = append(out, rec)
	}

	// Más reciente primero; ID como desempate para orden estable
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].RecordedAt.After(out[j].RecordedAt)
		}
		return out[i].ID > out[j].ID
	})

	if limit := filter.NormalizedLimit(); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *recordRepo) Supersede(ctx context.Context, prevID string, prevStatus details.MedicalRecordStatus, next records.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := details.CheckBuilt(next.Detail); err != nil {
		return err
	}
	prev, ok := r.byID[prevID]
	if !ok {
		return records.ErrNotFound
	}
	if prev.Superseded() {
		return records.ErrConflict
	}
	if _, exists := r.byID[next.ID]; exists {
		return errors.New("record already exists")
	}

	prev.SupersededBy = next.ID
	prev.UpdatedAt = next.RecordedAt
	if prevStatus != "" {
		prev.Status = prevStatus
	}

	r.byID[prevID] = prev
	r.byID[next.ID] = next
	return nil
}

func (r *recordRepo) UpdateStatus(ctx context.Context, id string, from, to details.MedicalRecordStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return records.ErrNotFound
	}
	if rec.Status != from || rec.Superseded() {
		return records.ErrConflict
	}

	rec.Status = to
	rec.UpdatedAt = at
	r.byID[id] = rec
	return nil
}
