package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
	"farmdeck.io/farmdeck/internal/pkg/metrics"
	syncengine "farmdeck.io/farmdeck/internal/sync"
)

// batchRequest is the body of POST /sync/batch.
type batchRequest struct {
	Actions []syncengine.ClientAction `json:"actions"`
}

// GetChanges handles GET /sync/changes?since=N. since omitted or 0 means
// a full pull from the beginning of the farm's history.
func (s *Server) GetChanges(c *gin.Context) {
	farmID, ok := farmScope(c)
	if !ok {
		return
	}

	since := int64(0)
	if raw := c.Query("since"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			fail(c, apperrors.BadRequest(apperrors.CodeInvalidCursor, "since must be a non-negative integer"))
			return
		}
		since = parsed
	}

	delta, err := s.puller.Pull(c.Request.Context(), farmID, since)
	if err != nil {
		fail(c, err)
		return
	}
	metrics.SyncPullsTotal.Inc()
	c.JSON(http.StatusOK, delta)
}

// PostBatch handles POST /sync/batch: a client's pending actions in
// submitted order. The response pairs every action with an applied entry
// or a conflict entry; the HTTP status is 200 either way, because
// partial success is the normal outcome.
func (s *Server) PostBatch(c *gin.Context) {
	farmID, ok := farmScope(c)
	if !ok {
		return
	}

	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.Wrap(err, apperrors.CodeValidationFailed, "malformed batch body", http.StatusBadRequest))
		return
	}

	result, err := s.applier.Apply(c.Request.Context(), farmID, req.Actions)
	if err != nil {
		fail(c, err)
		return
	}
	metrics.SyncBatchesTotal.Inc()
	c.JSON(http.StatusOK, result)
}
