// internal/handlers/upload/update-mapping/handler.go
package updatemapping

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "wealthlens-api/internal/common/errors"
	"wealthlens-api/internal/common/logger"
	"wealthlens-api/internal/mapping"
	"wealthlens-api/internal/uploadsession"
)

const Route = "/api/portfolio/upload/:session_id/mappings"

type Handler struct {
	config   *Config
	sessions *uploadsession.Store
	logger   logger.Logger
	errorOut *apierrors.ErrorHandler
}

func NewHandler(config *Config, sessions *uploadsession.Store, log logger.Logger, errorOut *apierrors.ErrorHandler) *Handler {
	return &Handler{
		config:   config,
		sessions: sessions,
		logger:   log.WithFields(map[string]interface{}{"handler": "update-mapping"}),
		errorOut: errorOut,
	}
}

// Handle applies user overrides to the session's detected mappings.
// Overridden mappings get manual confidence and a recomputed ignored
// flag; the session is re-saved, which also resets its TTL.
func (h *Handler) Handle(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorOut.Respond(c, apierrors.NewMalformedRequestError(err))
		return
	}
	if len(req.Overrides) == 0 {
		h.errorOut.Respond(c, apierrors.NewValidationFailedError("overrides must not be empty"))
		return
	}

	for _, override := range req.Overrides {
		if !mapping.IsKnownTargetField(mapping.TargetField(override.TargetField)) {
			h.errorOut.Respond(c, apierrors.NewUnknownTargetFieldError(override.TargetField))
			return
		}
	}

	session, err := h.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, uploadsession.ErrNotFound) {
			h.errorOut.Respond(c, apierrors.NewSessionNotFoundError(sessionID))
		} else {
			h.errorOut.Respond(c, apierrors.NewInternalError(err))
		}
		return
	}

	for _, override := range req.Overrides {
		idx := findMapping(session.Mappings, override.Header)
		if idx < 0 {
			h.errorOut.Respond(c, apierrors.NewValidationFailedError(
				fmt.Sprintf("no column named %q in this upload", override.Header)))
			return
		}
		session.Mappings[idx] = mapping.Override(session.Mappings[idx], mapping.TargetField(override.TargetField))
	}

	if err := h.sessions.Save(c.Request.Context(), session); err != nil {
		h.errorOut.Respond(c, apierrors.NewSessionStoreFailedError(err))
		return
	}

	h.logger.Info("mappings overridden", map[string]interface{}{
		"sessionId": sessionID,
		"overrides": len(req.Overrides),
	})

	c.JSON(http.StatusOK, Response{
		Success:  true,
		Mappings: session.Mappings,
	})
}

func findMapping(mappings []mapping.ColumnMapping, header string) int {
	for i, m := range mappings {
		if m.Header == header {
			return i
		}
	}
	return -1
}
