// Package httpapi exposes the engine over HTTP: the Meta webhook pair and a
// small JSON API backing the onboarding form and the dashboard.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmaldonado/sapo/internal/service"
	"github.com/rmaldonado/sapo/internal/whatsapp"
)

// Server wires the HTTP routes to the engine's services.
type Server struct {
	inbound     service.InboundService
	onboarding  service.OnboardingService
	stats       service.StatsService
	sender      whatsapp.Sender
	verifyToken string
	logger      *slog.Logger
	router      *gin.Engine
}

func NewServer(
	inbound service.InboundService,
	onboarding service.OnboardingService,
	stats service.StatsService,
	sender whatsapp.Sender,
	verifyToken string,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		inbound:     inbound,
		onboarding:  onboarding,
		stats:       stats,
		sender:      sender,
		verifyToken: verifyToken,
		logger:      logger,
		router:      router,
	}

	router.GET("/health", s.handleHealth)
	router.GET("/webhook", s.handleVerifyWebhook)
	router.POST("/webhook", s.handleWebhook)

	api := router.Group("/api")
	{
		api.POST("/users", s.handleCreateUser)
		api.POST("/habits", s.handleCreateHabit)
		api.GET("/stats/:number", s.handleStats)
		api.GET("/verify/:number", s.handleVerifyNumber)
	}

	return s
}

// Handler returns the server as an http.Handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run blocks serving on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
