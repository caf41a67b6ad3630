// internal/handlers/upload/confirm-import/handler.go
package confirmimport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "wealthlens-api/internal/common/errors"
	"wealthlens-api/internal/common/logger"
	"wealthlens-api/internal/common/metrics"
	"wealthlens-api/internal/mapping"
	"wealthlens-api/internal/uploadsession"
)

const Route = "/api/portfolio/upload/:session_id/confirm"

type Handler struct {
	config   *Config
	service  *Service
	sessions *uploadsession.Store
	logger   logger.Logger
	errorOut *apierrors.ErrorHandler
}

func NewHandler(config *Config, service *Service, sessions *uploadsession.Store, log logger.Logger, errorOut *apierrors.ErrorHandler) *Handler {
	return &Handler{
		config:   config,
		service:  service,
		sessions: sessions,
		logger:   log.WithFields(map[string]interface{}{"handler": "confirm-import"}),
		errorOut: errorOut,
	}
}

// Handle applies the session's current mappings (including any manual
// overrides) to the stored rows and writes the resulting holdings. The
// session is deleted afterwards; a confirm is one-shot.
func (h *Handler) Handle(c *gin.Context) {
	sessionID := c.Param("session_id")

	session, err := h.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, uploadsession.ErrNotFound) {
			h.errorOut.Respond(c, apierrors.NewSessionNotFoundError(sessionID))
		} else {
			h.errorOut.Respond(c, apierrors.NewInternalError(err))
		}
		return
	}

	holdings, warnings := mapping.ApplyMappings(session.Mappings, session.Rows)

	count, err := h.service.ImportHoldings(c.Request.Context(), session.UserID, holdings)
	if err != nil {
		h.errorOut.Respond(c, apierrors.NewDatabaseUpsertFailedError(err))
		return
	}

	metrics.HoldingsImported.Add(float64(count))

	h.service.RecordAudit(c.Request.Context(), "holdings_imported", "upload_session", sessionID,
		map[string]interface{}{
			"userId":   session.UserID,
			"fileName": session.FileName,
			"imported": count,
			"skipped":  len(warnings),
		})

	if err := h.sessions.Delete(c.Request.Context(), sessionID); err != nil {
		// The import already succeeded; an undeleted session just expires.
		h.logger.WithError(err).Warn("session cleanup failed", map[string]interface{}{
			"sessionId": sessionID,
		})
	}

	h.logger.Info("import confirmed", map[string]interface{}{
		"sessionId": sessionID,
		"userId":    session.UserID,
		"imported":  count,
		"warnings":  len(warnings),
	})

	c.JSON(http.StatusOK, Response{
		Success:       true,
		ImportedCount: count,
		Warnings:      warnings,
	})
}
