package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
)

// ListPaddocks handles GET /paddocks.
func (s *Server) ListPaddocks(c *gin.Context) {
	farmID, ok := farmScope(c)
	if !ok {
		return
	}
	items, err := s.paddocks.List(c.Request.Context(), farmID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetPaddock handles GET /paddocks/:id.
func (s *Server) GetPaddock(c *gin.Context) {
	farmID, ok := farmScope(c)
	if !ok {
		return
	}
	item, err := s.paddocks.Get(c.Request.Context(), farmID, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreatePaddock handles POST /paddocks.
func (s *Server) CreatePaddock(c *gin.Context) {
	s.commitEntity(c, service.EntityPaddock, "", syncengine.OpCreate, http.StatusCreated)
}

// UpdatePaddock handles PUT /paddocks/:id.
func (s *Server) UpdatePaddock(c *gin.Context) {
	s.commitEntity(c, service.EntityPaddock, c.Param("id"), syncengine.OpUpdate, http.StatusOK)
}

// DeletePaddock handles DELETE /paddocks/:id.
func (s *Server) DeletePaddock(c *gin.Context) {
	s.commitEntity(c, service.EntityPaddock, c.Param("id"), syncengine.OpDelete, http.StatusOK)
}
