package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelmatch/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	travelerH *TravelerHandler,
	matchH *MatchHandler,
	authH *AuthHandler,
	jwtSvc *service.JWTService,
	limiter service.RequestRateLimiter,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	auth := r.Group("/auth")
	auth.POST("/token", authH.IssueToken)

	travelers := r.Group("/travelers")
	travelers.POST("", travelerH.CreateTraveler)
	travelers.GET("", travelerH.ListTravelers)
	travelers.GET("/:id", travelerH.GetTraveler)

	// La evaluación de compatibilidad requiere token y respeta la cuota.
	matches := travelers.Group("/:id/matches")
	matches.Use(JWTAuthMiddleware(jwtSvc), rateLimitMiddleware(limiter))
	matches.GET("", matchH.ListMatches)
	matches.GET("/:candidateID", matchH.GetMatch)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
