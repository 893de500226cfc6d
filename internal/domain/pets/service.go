package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Species   string
	Breed     string
	Sex       string
	BirthDate *time.Time
	Microchip string
	Notes     string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Pet{}, fmt.Errorf("%w: owner_user_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	species := Species(strings.ToLower(strings.TrimSpace(in.Species)))
	if !species.IsValid() {
		return Pet{}, fmt.Errorf("%w: unsupported species %q", ErrInvalidInput, in.Species)
	}

	sex := SexUnknown
	if v := strings.TrimSpace(in.Sex); v != "" {
		sex = Sex(strings.ToLower(v))
		if !sex.IsValid() {
			return Pet{}, fmt.Errorf("%w: unsupported sex %q", ErrInvalidInput, in.Sex)
		}
	}

	now := s.now()
	if in.BirthDate != nil && in.BirthDate.After(now) {
		return Pet{}, fmt.Errorf("%w: birth_date must not be in the future", ErrInvalidInput)
	}

	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Species:     species,
		Breed:       strings.TrimSpace(in.Breed),
		Sex:         sex,
		BirthDate:   in.BirthDate,
		Microchip:   strings.TrimSpace(in.Microchip),
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, fmt.Errorf("%w: owner_user_id is required", ErrInvalidInput)
	}
	return s.repo.ListByOwner(ctx, ownerUserID)
}
