package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ewelton/faredrop/internal/models"
	"github.com/ewelton/faredrop/internal/search"
	"github.com/ewelton/faredrop/pkg/logger"
)

// Dealer runs one validated search to completion.
type Dealer interface {
	Search(ctx context.Context, req models.SearchRequest) (*search.Result, error)
}

type DealHandler struct {
	searcher Dealer
	log      *logger.Logger
}

func NewDealHandler(searcher Dealer, log *logger.Logger) *DealHandler {
	return &DealHandler{
		searcher: searcher,
		log:      log,
	}
}

func (h *DealHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	searchID := uuid.NewString()
	h.log.Info("deal search started", "search_id", searchID)

	result, err := h.searcher.Search(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "search_error",
			Message: "Failed to search deals: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchID: searchID,
		Metadata: models.SearchMetadata{
			OptionsGenerated: result.OptionsGenerated,
			OptionsQueried:   result.OptionsQueried,
			OptionsFailed:    result.OptionsFailed,
			SearchTimeMs:     time.Since(startTime).Milliseconds(),
		},
		BestDeal: result.Deal,
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
