package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"travelmatch/internal/domain"
	"travelmatch/internal/repository"
)

const tripDateLayout = "2006-01-02"

// TravelerHandler mantiene dependencias para endpoints de perfiles de viaje.
type TravelerHandler struct {
	logger    *zap.Logger
	travelers repository.TravelerRepository
}

func NewTravelerHandler(logger *zap.Logger, travelers repository.TravelerRepository) *TravelerHandler {
	return &TravelerHandler{
		logger:    logger,
		travelers: travelers,
	}
}

// CreateTraveler maneja POST /travelers.
func (h *TravelerHandler) CreateTraveler(c *gin.Context) {
	var req struct {
		DisplayName  string   `json:"display_name" binding:"required"`
		HomeLocation string   `json:"home_location"`
		TravelStyle  string   `json:"travel_style" binding:"required"`
		Interests    []string `json:"interests"`
		BudgetPerDay float64  `json:"budget_per_day"`
		TripStart    string   `json:"trip_start" binding:"required"`
		TripEnd      string   `json:"trip_end" binding:"required"`
		Destinations []string `json:"destinations"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create traveler request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	tripStart, err := time.Parse(tripDateLayout, req.TripStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "trip_start must be YYYY-MM-DD"})
		return
	}
	tripEnd, err := time.Parse(tripDateLayout, req.TripEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "trip_end must be YYYY-MM-DD"})
		return
	}

	profile := domain.TravelProfile{
		ID:           uuid.NewString(),
		DisplayName:  req.DisplayName,
		HomeLocation: req.HomeLocation,
		TravelStyle:  req.TravelStyle,
		Interests:    req.Interests,
		BudgetPerDay: req.BudgetPerDay,
		TripStart:    tripStart,
		TripEnd:      tripEnd,
		Destinations: req.Destinations,
		CreatedAt:    time.Now().UTC(),
	}
	if err := profile.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.travelers.Create(c.Request.Context(), profile); err != nil {
		h.logger.Error("create traveler failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create traveler"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"traveler": profile})
}

// ListTravelers maneja GET /travelers.
func (h *TravelerHandler) ListTravelers(c *gin.Context) {
	profiles, err := h.travelers.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list travelers failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list travelers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"travelers": profiles})
}

// GetTraveler maneja GET /travelers/:id.
func (h *TravelerHandler) GetTraveler(c *gin.Context) {
	id := c.Param("id")
	profile, err := h.travelers.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "traveler not found"})
			return
		}
		h.logger.Error("get traveler failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch traveler"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"traveler": profile})
}
