package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"travelmatch/internal/domain"
	"travelmatch/internal/service"
)

// MatchHandler expone la evaluación de compatibilidad por HTTP.
type MatchHandler struct {
	logger  *zap.Logger
	matches *service.MatchService
}

func NewMatchHandler(logger *zap.Logger, matches *service.MatchService) *MatchHandler {
	return &MatchHandler{
		logger:  logger,
		matches: matches,
	}
}

// ListMatches maneja GET /travelers/:id/matches y devuelve cada candidato con
// su puntaje y los destinos en común, en el orden de la fuente de perfiles.
func (h *MatchHandler) ListMatches(c *gin.Context) {
	referenceID := c.Param("id")
	results, err := h.matches.EvaluateAll(c.Request.Context(), referenceID)
	if err != nil {
		h.writeMatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": results})
}

// GetMatch maneja GET /travelers/:id/matches/:candidateID.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	referenceID := c.Param("id")
	candidateID := c.Param("candidateID")
	result, err := h.matches.EvaluatePair(c.Request.Context(), referenceID, candidateID)
	if err != nil {
		h.writeMatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": result})
}

func (h *MatchHandler) writeMatchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		c.JSON(http.StatusNotFound, gin.H{"error": "traveler not found"})
	case errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrNegativeBudget),
		errors.Is(err, domain.ErrEmptyProfileID):
		// Un perfil almacenado malformado viola el contrato de la fuente de
		// datos; se reporta en vez de devolver un puntaje sin sentido.
		h.logger.Warn("malformed profile rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("match evaluation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not evaluate matches"})
	}
}
