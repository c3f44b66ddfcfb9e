package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"travelmatch/internal/repository"
	"travelmatch/internal/service"
)

// AuthHandler emite tokens de acceso para viajeros registrados.
type AuthHandler struct {
	logger    *zap.Logger
	travelers repository.TravelerRepository
	jwt       *service.JWTService
}

func NewAuthHandler(logger *zap.Logger, travelers repository.TravelerRepository, jwtSvc *service.JWTService) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		travelers: travelers,
		jwt:       jwtSvc,
	}
}

// IssueToken maneja POST /auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req struct {
		TravelerID string `json:"traveler_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	traveler, err := h.travelers.GetByID(c.Request.Context(), req.TravelerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "traveler not found"})
			return
		}
		h.logger.Error("issue token lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	token, err := h.jwt.Issue(traveler)
	if err != nil {
		h.logger.Error("issue token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, token)
}
