package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmaldonado/sapo/internal/domain"
	"github.com/rmaldonado/sapo/internal/repository"
)

type createUserRequest struct {
	WhatsAppNumber string `json:"whatsapp_number" binding:"required"`
	Name           string `json:"name"`
}

type createHabitRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	ReminderTime string `json:"reminder_time"`
	Priority     int    `json:"priority"`
}

func (s *Server) handleCreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := s.onboarding.RegisterUser(c.Request.Context(), req.WhatsAppNumber, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":              u.ID,
		"whatsapp_number": u.WhatsAppNumber,
		"name":            u.Name,
	})
}

func (s *Server) handleCreateHabit(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h := &domain.Habit{
		UserID:       req.UserID,
		Name:         req.Name,
		ReminderTime: req.ReminderTime,
		Priority:     req.Priority,
	}
	if err := s.onboarding.CreateHabit(c.Request.Context(), h); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": h.ID})
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.stats.StatsForNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleVerifyNumber(c *gin.Context) {
	status, err := s.stats.VerifyNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}
