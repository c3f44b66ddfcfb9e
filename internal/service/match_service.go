package service

import (
	"context"

	"go.uber.org/zap"

	"travelmatch/internal/domain"
	"travelmatch/internal/repository"
)

// MatchService evalúa un viajero de referencia contra el resto de perfiles
// disponibles. La evaluación es secuencial y por par; no ordena ni filtra
// resultados, eso pertenece a la capa de presentación.
type MatchService struct {
	logger    *zap.Logger
	travelers repository.TravelerRepository
	engine    CompatEngine
}

func NewMatchService(logger *zap.Logger, travelers repository.TravelerRepository, engine CompatEngine) *MatchService {
	return &MatchService{
		logger:    logger,
		travelers: travelers,
		engine:    engine,
	}
}

// EvaluateAll calcula la compatibilidad de la referencia con cada candidato
// almacenado, en el orden en que la fuente los devuelve. Un perfil malformado
// aborta la evaluación completa: no hay resultados parciales.
func (s *MatchService) EvaluateAll(ctx context.Context, referenceID string) ([]domain.MatchResult, error) {
	reference, err := s.travelers.GetByID(ctx, referenceID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.travelers.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == reference.ID {
			continue
		}
		compatibility, err := s.engine.Compute(reference, candidate)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.MatchResult{
			Traveler:      candidate,
			Compatibility: compatibility,
		})
	}

	s.logger.Debug("evaluated candidates",
		zap.String("reference_id", referenceID),
		zap.Int("candidates", len(results)),
	)
	return results, nil
}

// EvaluatePair calcula la compatibilidad entre dos viajeros concretos.
func (s *MatchService) EvaluatePair(ctx context.Context, referenceID, candidateID string) (domain.MatchResult, error) {
	reference, err := s.travelers.GetByID(ctx, referenceID)
	if err != nil {
		return domain.MatchResult{}, err
	}
	candidate, err := s.travelers.GetByID(ctx, candidateID)
	if err != nil {
		return domain.MatchResult{}, err
	}

	compatibility, err := s.engine.Compute(reference, candidate)
	if err != nil {
		return domain.MatchResult{}, err
	}
	return domain.MatchResult{Traveler: candidate, Compatibility: compatibility}, nil
}
