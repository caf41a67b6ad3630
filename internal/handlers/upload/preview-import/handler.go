// internal/handlers/upload/preview-import/handler.go
package previewimport

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apierrors "wealthlens-api/internal/common/errors"
	"wealthlens-api/internal/common/logger"
	"wealthlens-api/internal/common/metrics"
	"wealthlens-api/internal/mapping"
	"wealthlens-api/internal/uploadsession"
)

const Route = "/api/portfolio/upload/preview"

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
		logger:   log.WithFields(map[string]interface{}{"handler": "preview-import"}),
		errorOut: errorOut,
	}
}

// Handle parses the uploaded file, maps every column, converts the rows
// through the detected mappings and stores an upload session the later
// steps operate on. The mapper itself cannot fail; every error here
// comes from the file or the session store.
func (h *Handler) Handle(c *gin.Context) {
	userID := c.PostForm("user_id")
	if userID == "" {
		h.errorOut.Respond(c, apierrors.NewMissingUserIDError())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.errorOut.Respond(c, apierrors.NewMalformedRequestError(fmt.Errorf("missing file field: %w", err)))
		return
	}
	if fileHeader.Size > h.config.MaxFileBytes {
		h.errorOut.Respond(c, apierrors.NewFileTooLargeError(h.config.MaxFileBytes))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorOut.Respond(c, apierrors.NewFileParseFailedError(err))
		return
	}
	defer file.Close()

	fileType, headers, rows, err := parseUpload(fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, errUnsupportedType):
			h.errorOut.Respond(c, apierrors.NewUnsupportedFileTypeError(fileHeader.Filename))
		case errors.Is(err, errEmptyHeaders):
			h.errorOut.Respond(c, apierrors.NewEmptyHeaderSetError())
		default:
			h.errorOut.Respond(c, apierrors.NewFileParseFailedError(err))
		}
		return
	}

	var warnings []string
	if len(rows) > h.config.MaxRows {
		warnings = append(warnings,
			fmt.Sprintf("file has %d data rows; only the first %d were read", len(rows), h.config.MaxRows))
		rows = rows[:h.config.MaxRows]
	}

	mappings := mapping.MapColumns(headers)
	holdings, rowWarnings := mapping.ApplyMappings(mappings, rows)
	warnings = append(warnings, rowWarnings...)

	session := &uploadsession.Session{
		SessionID: uuid.New().String(),
		UserID:    userID,
		FileName:  fileHeader.Filename,
		Headers:   headers,
		Mappings:  mappings,
		Rows:      rows,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.sessions.Save(c.Request.Context(), session); err != nil {
		h.errorOut.Respond(c, apierrors.NewSessionStoreFailedError(err))
		return
	}

	metrics.UploadsPreviewed.WithLabelValues(fileType).Inc()

	ignored := 0
	for _, m := range mappings {
		if m.IsIgnored {
			ignored++
		}
	}

	h.logger.Info("upload previewed", map[string]interface{}{
		"sessionId": session.SessionID,
		"userId":    userID,
		"fileName":  fileHeader.Filename,
		"fileType":  fileType,
		"rows":      len(rows),
		"columns":   len(headers),
	})

	c.JSON(http.StatusOK, Response{
		Success:         true,
		SessionID:       session.SessionID,
		Holdings:        holdings,
		DetectedColumns: mappings,
		Warnings:        warnings,
		Summary: Summary{
			FileName:       fileHeader.Filename,
			TotalRows:      len(rows),
			ValidRows:      len(holdings),
			SkippedRows:    len(rows) - len(holdings),
			TotalColumns:   len(headers),
			IgnoredColumns: ignored,
		},
	})
}
