package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmdeck.io/farmdeck/internal/api/middleware"
	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
)

// Farm routes live outside the farm-scoped group: creating a farm is
// what establishes a scope in the first place.

type createFarmRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateFarm handles POST /farms.
func (s *Server) CreateFarm(c *gin.Context) {
	var req createFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.Wrap(err, apperrors.CodeValidationFailed, "malformed farm body", http.StatusBadRequest))
		return
	}
	farm, err := s.farms.Create(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, farm)
}

// GetFarm handles GET /farms/:id.
func (s *Server) GetFarm(c *gin.Context) {
	farm, err := s.farms.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, farm)
}

// IssueFarmToken handles POST /farms/:id/tokens, minting a farm-scoped
// bearer token. Only available when a token secret is configured; in
// header mode clients scope themselves directly.
func (s *Server) IssueFarmToken(c *gin.Context) {
	if len(s.tokenCfg.Secret) == 0 {
		fail(c, apperrors.BadRequest(apperrors.CodeFarmTokenInvalid, "token auth is not configured"))
		return
	}

	farm, err := s.farms.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	token, expiresAt, err := middleware.GenerateFarmToken(s.tokenCfg, farm.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresAt": expiresAt,
		"farmId":    farm.ID,
	})
}
