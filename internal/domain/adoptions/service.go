package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-catalog/internal/domain/pets"
	"pet-adoption-catalog/internal/platform/logger"
	"pet-adoption-catalog/internal/platform/metrics"

	"github.com/google/uuid"
)

// PetLookup resuelve el pet elegido en el formulario (lo implementa pets.Store).
type PetLookup interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type Service struct {
	pets    PetLookup
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(lookup PetLookup, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		pets:    lookup,
		log:     log.With(map[string]any{"component": "adoptions"}),
		metrics: m,
		now:     time.Now,
	}
}

// Submit valida el formulario y devuelve un acuse local.
// No hay llamada de red ni persistencia: el acuse es todo el proceso.
func (s *Service) Submit(ctx context.Context, in Request) (Acknowledgment, error) {
	now := s.now()
	in = trimRequest(in)

	if verr := Validate(in, now); verr != nil {
		s.observe("rejected")
		return Acknowledgment{}, verr
	}

	p, err := s.pets.GetByID(ctx, in.PetID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) || errors.Is(err, pets.ErrInvalidInput) {
			s.observe("rejected")
			return Acknowledgment{}, &ValidationError{Fields: map[string]string{
				"pet_id": "selected pet was not found",
			}}
		}
		return Acknowledgment{}, err
	}

	ack := Acknowledgment{
		ID:          uuid.NewString(),
		PetID:       p.ID,
		PetName:     p.FirstName,
		Message:     fmt.Sprintf("Adoption request for %s was received.", p.FirstName),
		SubmittedAt: now,
	}

	s.log.Info("adoption request acknowledged", map[string]any{
		"ack_id": ack.ID,
		"pet_id": ack.PetID,
	})
	s.observe("accepted")
	return ack, nil
}

func (s *Service) observe(result string) {
	if s.metrics != nil {
		s.metrics.AdoptionRequests.WithLabelValues(result).Inc()
	}
}

func trimRequest(in Request) Request {
	in.PetID = strings.TrimSpace(in.PetID)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	return in
}
