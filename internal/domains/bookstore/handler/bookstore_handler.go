package handler

import (
	"errors"
	"net/http"

	"bookstore-map/internal/domains/bookstore/model"
	"bookstore-map/internal/domains/bookstore/repository"
	"bookstore-map/internal/domains/bookstore/service"
	"bookstore-map/internal/shared/middleware"
	"bookstore-map/internal/shared/response"
	"bookstore-map/pkg/logger"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Labels are the fixed display strings of the page.
type Labels struct {
	Title     string
	Total     string
	Region    string
	SubRegion string
	Sort      string
	HitRate   string
}

var pageLabels = Labels{
	Title:     model.PageTitle,
	Total:     model.TotalLabel,
	Region:    model.RegionLabel,
	SubRegion: model.SubRegionLabel,
	Sort:      model.SortLabel,
	HitRate:   model.HitRateLabel,
}

// BookstoreHandler serves the bookstore page as HTML and as JSON.
type BookstoreHandler struct {
	service    service.ServiceInterface
	selections repository.SelectionStore
}

// NewBookstoreHandler creates the handler. selections may be nil, in which
// case nothing is remembered between requests.
func NewBookstoreHandler(svc service.ServiceInterface, selections repository.SelectionStore) *BookstoreHandler {
	return &BookstoreHandler{
		service:    svc,
		selections: selections,
	}
}

// Page handles GET /
func (h *BookstoreHandler) Page(c *gin.Context) {
	page, err := h.evaluate(c)
	if err != nil {
		statusCode, message, code := model.MapErrorToHTTP(err)
		c.HTML(statusCode, "error.html", gin.H{
			"Title":   model.PageTitle,
			"Message": message,
			"Code":    code,
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Labels": pageLabels,
		"Page":   page,
	})
}

// GetPage handles GET /api/v1/bookstores
func (h *BookstoreHandler) GetPage(c *gin.Context) {
	page, err := h.evaluate(c)
	if err != nil {
		statusCode, message, code := model.MapErrorToHTTP(err)
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			response.ErrorWithDetails(c, statusCode, code, message, fieldErrs)
			return
		}
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, page, &response.Meta{Total: page.Total})
}

func (h *BookstoreHandler) evaluate(c *gin.Context) (*model.Page, error) {
	ctx := c.Request.Context()
	sel := h.currentSelection(c)

	page, err := h.service.Evaluate(ctx, sel)
	if err != nil {
		if model.IsTransportError(err) {
			logger.Error("Bookstore page evaluation failed", err)
		}
		return nil, err
	}

	h.rememberSelection(c, page.Selection)
	return page, nil
}

// currentSelection prefers the query string and falls back to the
// selection stored for the session.
func (h *BookstoreHandler) currentSelection(c *gin.Context) model.Selection {
	q := c.Request.URL.Query()
	sessionID := middleware.GetSessionID(c)
	if model.HasQuery(q) || h.selections == nil || sessionID == "" {
		return model.SelectionFromQuery(q)
	}

	sel, found, err := h.selections.Load(c.Request.Context(), sessionID)
	if err != nil {
		logger.Warn("Selection store unavailable", err)
		return model.Selection{}
	}
	if !found {
		return model.Selection{}
	}
	return sel
}

func (h *BookstoreHandler) rememberSelection(c *gin.Context, sel model.Selection) {
	sessionID := middleware.GetSessionID(c)
	if h.selections == nil || sessionID == "" {
		return
	}
	if err := h.selections.Save(c.Request.Context(), sessionID, sel); err != nil {
		logger.Warn("Selection store unavailable", err)
	}
}
