package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
	syncengine "farmdeck.io/farmdeck/internal/sync"
	"farmdeck.io/farmdeck/internal/usecase"
)

// commitEntity runs one online mutation through the commit use case and
// writes the standard mutation response. The body is passed to the
// entity mutator as-is; field validation happens there.
func (s *Server) commitEntity(c *gin.Context, entityType, entityID string, op syncengine.Op, successStatus int) {
	farmID, ok := farmScope(c)
	if !ok {
		return
	}

	var data json.RawMessage
	if op != syncengine.OpDelete {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			fail(c, apperrors.Wrap(err, apperrors.CodeValidationFailed, "read request body", http.StatusBadRequest))
			return
		}
		if len(body) > 0 && !json.Valid(body) {
			fail(c, apperrors.BadRequest(apperrors.CodeValidationFailed, "body is not valid JSON"))
			return
		}
		data = body
	}

	result, err := s.commit.Execute(c.Request.Context(), usecase.CommitInput{
		FarmID:     farmID,
		EntityType: entityType,
		EntityID:   entityID,
		Op:         op,
		Data:       data,
	})
	if err != nil {
		fail(c, err)
		return
	}

	resp := gin.H{"id": result.EntityID, "seq": result.Seq}
	if result.Payload != nil {
		resp["entity"] = result.Payload
	}
	c.JSON(successStatus, resp)
}
