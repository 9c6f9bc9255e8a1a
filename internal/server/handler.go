package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aleister1102/hlsprobe/internal/common"
	"github.com/aleister1102/hlsprobe/internal/models"
	"github.com/aleister1102/hlsprobe/internal/urlhandler"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Extractor is the pipeline the boundary drives.
type Extractor interface {
	Extract(ctx context.Context, req models.ExtractionRequest) (*models.ExtractionResult, error)
}

// ExtractHandler serves /api/extract.
type ExtractHandler struct {
	extractor Extractor
	logger    zerolog.Logger
}

// NewExtractHandler creates a new extract handler
func NewExtractHandler(extractor Extractor, logger zerolog.Logger) *ExtractHandler {
	return &ExtractHandler{
		extractor: extractor,
		logger:    logger.With().Str("component", "ExtractHandler").Logger(),
	}
}

// Handle reads the target URL from the query string (GET) or a JSON body
// (POST) and maps the outcome to 200, 400, 404 or 500.
func (h *ExtractHandler) Handle(c *gin.Context) {
	rawURL, err := h.targetURL(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if _, err := urlhandler.ValidateTargetURL(rawURL); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	log := h.logger.With().Str("request_id", c.GetString(requestIDKey)).Str("url", rawURL).Logger()

	result, err := h.extractor.Extract(c.Request.Context(), models.ExtractionRequest{URL: rawURL})
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		log.Error().Err(err).Msg("Extraction failed")
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	if result.IsEmpty() {
		log.Info().Msg("No manifest links found")
		c.JSON(http.StatusNotFound, errorResponse("no m3u8 links found on page"))
		return
	}

	log.Info().Int("links", len(result.Links)).Str("primary", result.PrimaryLink).Msg("Extraction succeeded")
	c.JSON(http.StatusOK, successResponse(result))
}

func (h *ExtractHandler) targetURL(c *gin.Context) (string, error) {
	var rawURL string
	if c.Request.Method == http.MethodPost {
		var req models.ExtractionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", common.WrapError(err, "invalid JSON body")
		}
		rawURL = req.URL
	} else {
		rawURL = c.Query("url")
	}

	if strings.TrimSpace(rawURL) == "" {
		return "", common.NewError("url parameter is required")
	}
	return rawURL, nil
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
