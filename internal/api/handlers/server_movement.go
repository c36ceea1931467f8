package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
)

// ListMovements handles GET /movements.
func (s *Server) ListMovements(c *gin.Context) {
	farmID, ok := farmScope(c)
	if !ok {
		return
	}
	items, err := s.movements.List(c.Request.Context(), farmID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateMovement handles POST /movements.
func (s *Server) CreateMovement(c *gin.Context) {
	s.commitEntity(c, service.EntityMovement, "", syncengine.OpCreate, http.StatusCreated)
}

// UpdateMovement handles PUT /movements/:id.
func (s *Server) UpdateMovement(c *gin.Context) {
	s.commitEntity(c, service.EntityMovement, c.Param("id"), syncengine.OpUpdate, http.StatusOK)
}

// DeleteMovement handles DELETE /movements/:id.
func (s *Server) DeleteMovement(c *gin.Context) {
	s.commitEntity(c, service.EntityMovement, c.Param("id"), syncengine.OpDelete, http.StatusOK)
}
