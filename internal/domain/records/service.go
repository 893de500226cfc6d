package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/TFG-DataVet/dvt-back-sub001/internal/domain/records/details"
	"github.com/TFG-DataVet/dvt-back-sub001/internal/platform/logger"
	"github.com/TFG-DataVet/dvt-back-sub001/internal/platform/metrics"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("record not found")

	// ErrNoChanges: la corrección no difiere materialmente del registro anterior.
	ErrNoChanges = errors.New("correction does not change the record")

	// ErrSuperseded: el registro ya fue reemplazado por una corrección.
	ErrSuperseded = errors.New("record has been superseded")

	// ErrConflict: otra escritura ganó (doble corrección, estado cambiado).
	ErrConflict = errors.New("record was modified concurrently")
)

// maxHistory corta cadenas de corrección corruptas (ciclos).
const maxHistory = 1000

type Service struct {
	repo    Repository
	factory *details.Factory
	now     func() time.Time
	log     logger.Logger
	metrics *metrics.Records
}

func NewService(repo Repository, log logger.Logger, m *metrics.Records) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		repo:    repo,
		now:     time.Now,
		log:     log.With(map[string]any{"module": "records"}),
		metrics: m,
	}
	// el factory lee s.now en cada llamada, así los tests pueden fijar el reloj
	s.factory = details.NewFactoryWithClock(func() time.Time { return s.now() })
	return s
}

type CreateInput struct {
	Type          details.MedicalRecordType
	RecordedBy    string
	InitialStatus details.MedicalRecordStatus // opcional; PENDING por defecto en tipos con estado
	Detail        json.RawMessage
}

func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (MedicalRecord, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return MedicalRecord{}, fmt.Errorf("%w: pet id is required", ErrInvalidInput)
	}
	recordedBy := strings.TrimSpace(in.RecordedBy)
	if recordedBy == "" {
		return MedicalRecord{}, fmt.Errorf("%w: recorded_by is required", ErrInvalidInput)
	}

	status, err := initialStatus(in.Type, in.InitialStatus)
	if err != nil {
		return MedicalRecord{}, err
	}

	d, err := s.factory.Create(in.Type, in.Detail)
	if err != nil {
		return MedicalRecord{}, err
	}

	now := s.now()
	rec := MedicalRecord{
		ID:         uuid.NewString(),
		PetID:      petID,
		Type:       in.Type,
		Status:     status,
		Detail:     d,
		RecordedBy: recordedBy,
		RecordedAt: now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return MedicalRecord{}, err
	}

	s.metrics.IncCreated(string(rec.Type))
	s.log.Info("record created", map[string]any{
		"record_id": rec.ID,
		"pet_id":    rec.PetID,
		"type":      rec.Type,
		"status":    rec.Status,
	})
	return rec, nil
}

func initialStatus(kind details.MedicalRecordType, requested details.MedicalRecordStatus) (details.MedicalRecordStatus, error) {
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q", details.ErrUnknownRecordType, kind)
	}
	if requested == "" && details.IsStatusBearing(kind) {
		requested = details.StatusPending
	}
	if !details.ValidInitialStatus(kind, requested) {
		if requested == "" {
			return "", fmt.Errorf("%w: %s records need an initial status", ErrInvalidInput, kind)
		}
		return "", fmt.Errorf("%w: %s records cannot start as %q", ErrInvalidInput, kind, requested)
	}
	return requested, nil
}

// GetByID busca un registro de la mascota. Un registro de otra mascota es ErrNotFound.
func (s *Service) GetByID(ctx context.Context, petID, id string) (MedicalRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return MedicalRecord{}, fmt.Errorf("%w: record id is required", ErrInvalidInput)
	}
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MedicalRecord{}, err
	}
	if rec.PetID != petID {
		return MedicalRecord{}, ErrNotFound
	}
	return rec, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]MedicalRecord, error) {
	filter.Limit = filter.NormalizedLimit()
	return s.repo.ListByPet(ctx, petID, filter)
}

type CorrectInput struct {
	RecordedBy string
	Detail     json.RawMessage
}

// Correct reemplaza un registro por una versión corregida.
//
// El detalle nuevo debe ser del mismo tipo y diferir materialmente del anterior.
// En tipos con estado, el anterior pasa a CORRECTED y el nuevo hereda su estado.
func (s *Service) Correct(ctx context.Context, petID, id string, in CorrectInput) (MedicalRecord, error) {
	recordedBy := strings.TrimSpace(in.RecordedBy)
	if recordedBy == "" {
		return MedicalRecord{}, fmt.Errorf("%w: recorded_by is required", ErrInvalidInput)
	}

	prev, err := s.GetByID(ctx, petID, id)
	if err != nil {
		return MedicalRecord{}, err
	}
	if prev.Superseded() {
		return MedicalRecord{}, ErrSuperseded
	}

	d, err := s.factory.Create(prev.Type, in.Detail)
	if err != nil {
		s.metrics.IncCorrection(string(prev.Type), "rejected")
		return MedicalRecord{}, err
	}

	changed, err := d.CanCorrect(prev.Detail)
	if err != nil {
		return MedicalRecord{}, err
	}
	if !changed {
		s.metrics.IncCorrection(string(prev.Type), "no_changes")
		return MedicalRecord{}, ErrNoChanges
	}

	now := s.now()
	next := MedicalRecord{
		ID:         uuid.NewString(),
		PetID:      prev.PetID,
		Type:       prev.Type,
		Status:     prev.Status,
		Detail:     d,
		RecordedBy: recordedBy,
		RecordedAt: now,
		UpdatedAt:  now,
		CorrectsID: prev.ID,
	}

	var prevStatus details.MedicalRecordStatus
	if details.IsStatusBearing(prev.Type) {
		prevStatus = details.StatusCorrected
	}

	if err := s.repo.Supersede(ctx, prev.ID, prevStatus, next); err != nil {
		return MedicalRecord{}, err
	}

	s.metrics.IncCorrection(string(prev.Type), "accepted")
	s.log.Info("record corrected", map[string]any{
		"record_id":   next.ID,
		"corrects_id": prev.ID,
		"pet_id":      next.PetID,
		"type":        next.Type,
	})
	return next, nil
}

// ApplyAction aplica una acción de workflow y persiste el nuevo estado.
func (s *Service) ApplyAction(ctx context.Context, petID, id string, action details.RecordAction) (MedicalRecord, details.StatusChangeResult, error) {
	rec, err := s.GetByID(ctx, petID, id)
	if err != nil {
		return MedicalRecord{}, details.StatusChangeResult{}, err
	}
	if rec.Superseded() {
		return MedicalRecord{}, details.StatusChangeResult{}, ErrSuperseded
	}

	res, err := rec.Detail.ApplyAction(rec.Status, action)
	if err != nil {
		outcome := "invalid"
		if errors.Is(err, details.ErrUnsupportedOperation) {
			outcome = "unsupported"
		}
		s.metrics.IncTransition(string(rec.Type), string(action), outcome)
		return MedicalRecord{}, details.StatusChangeResult{}, err
	}

	now := s.now()
	if err := s.repo.UpdateStatus(ctx, rec.ID, res.Previous(), res.Current(), now); err != nil {
		if errors.Is(err, ErrConflict) {
			s.metrics.IncTransition(string(rec.Type), string(action), "conflict")
		}
		return MedicalRecord{}, details.StatusChangeResult{}, err
	}

	rec.Status = res.Current()
	rec.UpdatedAt = now

	s.metrics.IncTransition(string(rec.Type), string(action), "applied")
	s.log.Info("record status changed", map[string]any{
		"record_id": rec.ID,
		"type":      rec.Type,
		"action":    action,
		"from":      res.Previous(),
		"to":        res.Current(),
	})
	return rec, res, nil
}

// History devuelve la cadena de correcciones de un registro, del más nuevo al más viejo.
// Se puede pedir desde cualquier eslabón de la cadena.
func (s *Service) History(ctx context.Context, petID, id string) ([]MedicalRecord, error) {
	rec, err := s.GetByID(ctx, petID, id)
	if err != nil {
		return nil, err
	}

	// subir hasta la versión vigente
	for i := 0; rec.Superseded(); i++ {
		if i >= maxHistory {
			return nil, fmt.Errorf("history of %s: correction chain too long", id)
		}
		rec, err = s.repo.GetByID(ctx, rec.SupersededBy)
		if err != nil {
			return nil, fmt.Errorf("history of %s: %w", id, err)
		}
	}

	out := []MedicalRecord{rec}
	for rec.CorrectsID != "" {
		if len(out) >= maxHistory {
			return nil, fmt.Errorf("history of %s: correction chain too long", id)
		}
		rec, err = s.repo.GetByID(ctx, rec.CorrectsID)
		if err != nil {
			return nil, fmt.Errorf("history of %s: %w", id, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
