package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
)

// ListMobs handles GET /mobs.
func (s *Server) ListMobs(c *gin.Context) {
	farmID, ok := farmScope(c)
	if !ok {
		return
	}
	items, err := s.mobs.List(c.Request.Context(), farmID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetMob handles GET /mobs/:id.
func (s *Server) GetMob(c *gin.Context) {
	farmID, ok := farmScope(c)
	if !ok {
		return
	}
	item, err := s.mobs.Get(c.Request.Context(), farmID, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateMob handles POST /mobs.
func (s *Server) CreateMob(c *gin.Context) {
	s.commitEntity(c, service.EntityMob, "", syncengine.OpCreate, http.StatusCreated)
}

// UpdateMob handles PUT /mobs/:id.
func (s *Server) UpdateMob(c *gin.Context) {
	s.commitEntity(c, service.EntityMob, c.Param("id"), syncengine.OpUpdate, http.StatusOK)
}

// DeleteMob handles DELETE /mobs/:id.
func (s *Server) DeleteMob(c *gin.Context) {
	s.commitEntity(c, service.EntityMob, c.Param("id"), syncengine.OpDelete, http.StatusOK)
}

// ListMobStockRecords handles GET /mobs/:id/stock-records.
func (s *Server) ListMobStockRecords(c *gin.Context) {
	farmID, ok := farmScope(c)
	if !ok {
		return
	}
	items, err := s.stockRecords.ListByMob(c.Request.Context(), farmID, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
