package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmdeck.io/farmdeck/internal/service"
	syncengine "farmdeck.io/farmdeck/internal/sync"
)

// Stock records are per-mob husbandry events; paddock records are
// per-paddock agronomy events. Both are listed through their parent.

// CreateStockRecord handles POST /stock-records.
func (s *Server) CreateStockRecord(c *gin.Context) {
	s.commitEntity(c, service.EntityStockRecord, "", syncengine.OpCreate, http.StatusCreated)
}

// UpdateStockRecord handles PUT /stock-records/:id.
func (s *Server) UpdateStockRecord(c *gin.Context) {
	s.commitEntity(c, service.EntityStockRecord, c.Param("id"), syncengine.OpUpdate, http.StatusOK)
}

// DeleteStockRecord handles DELETE /stock-records/:id.
func (s *Server) DeleteStockRecord(c *gin.Context) {
	s.commitEntity(c, service.EntityStockRecord, c.Param("id"), syncengine.OpDelete, http.StatusOK)
}

// ListPaddockRecords handles GET /paddocks/:id/records.
func (s *Server) ListPaddockRecords(c *gin.Context) {
	farmID, ok := farmScope(c)
	if !ok {
		return
	}
	items, err := s.paddockRecords.ListByPaddock(c.Request.Context(), farmID, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreatePaddockRecord handles POST /paddock-records.
func (s *Server) CreatePaddockRecord(c *gin.Context) {
	s.commitEntity(c, service.EntityPaddockRecord, "", syncengine.OpCreate, http.StatusCreated)
}

// UpdatePaddockRecord handles PUT /paddock-records/:id.
func (s *Server) UpdatePaddockRecord(c *gin.Context) {
	s.commitEntity(c, service.EntityPaddockRecord, c.Param("id"), syncengine.OpUpdate, http.StatusOK)
}

// DeletePaddockRecord handles DELETE /paddock-records/:id.
func (s *Server) DeletePaddockRecord(c *gin.Context) {
	s.commitEntity(c, service.EntityPaddockRecord, c.Param("id"), syncengine.OpDelete, http.StatusOK)
}
