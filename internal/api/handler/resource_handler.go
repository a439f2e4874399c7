package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/core/repository"
	"github.com/martijn/trainhub/internal/core/service"
)

// ResourceHandler serves the CRUD routes of one sandbox resource.
type ResourceHandler struct {
	catalog  *service.CatalogService
	resource string
}

func NewResourceHandler(catalog *service.CatalogService, resource string) *ResourceHandler {
	return &ResourceHandler{
		catalog:  catalog,
		resource: resource,
	}
}

// List handles GET /{resource}
//
// Optional parameters: query (see util.ParseQueryString), order
// ("field|asc,other|desc"), page and per_page. The total match count is
// returned in X-Total-Count.
func (h *ResourceHandler) List(c *gin.Context) {
	filter, err := h.catalog.ParseListFilter(h.resource, c.Query("query"), c.Query("order"))
	if err != nil {
		respondError(c, err)
		return
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "0"))

	records, err := h.catalog.List(c.Request.Context(), h.resource, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	count := len(records)
	if filter.PerPage > 0 {
		unpaged := filter
		unpaged.PerPage = 0
		all, err := h.catalog.List(c.Request.Context(), h.resource, unpaged)
		if err == nil {
			count = len(all)
		}
	}
	c.Header("X-Total-Count", strconv.Itoa(count))
	c.JSON(http.StatusOK, records)
}

// Get handles GET /{resource}/:id
func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, h.resource)
	if !ok {
		return
	}

	rec, err := h.catalog.Get(c.Request.Context(), h.resource, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Create handles POST /{resource}
func (h *ResourceHandler) Create(c *gin.Context) {
	body, ok := bindRecord(c)
	if !ok {
		return
	}

	rec, err := h.catalog.Create(c.Request.Context(), h.resource, body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// Update handles PUT /{resource}/:id. Absent keys are left untouched and
// null keys are cleared.
func (h *ResourceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, h.resource)
	if !ok {
		return
	}
	body, ok := bindRecord(c)
	if !ok {
		return
	}

	rec, err := h.catalog.Update(c.Request.Context(), h.resource, id, body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Delete handles DELETE /{resource}/:id
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, h.resource)
	if !ok {
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), h.resource, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Sessions handles GET /{resource}/:id/sessions
func (h *ResourceHandler) Sessions(c *gin.Context) {
	id, ok := parseID(c, h.resource)
	if !ok {
		return
	}

	records, err := h.catalog.SessionsFor(c.Request.Context(), h.resource, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func parseID(c *gin.Context, resource string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: fmt.Sprintf("Invalid %s ID", strings.TrimSuffix(resource, "s")),
			Code:    http.StatusBadRequest,
		})
		return 0, false
	}
	return id, true
}

// bindRecord decodes a JSON object body.
func bindRecord(c *gin.Context) (repository.Record, bool) {
	raw, err := c.GetRawData()
	if err == nil {
		var body repository.Record
		if err = json.Unmarshal(raw, &body); err == nil && body == nil {
			err = errors.New("expected a JSON object")
		}
		if err == nil {
			return body, true
		}
	}

	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Bad Request",
		Message: err.Error(),
		Code:    http.StatusBadRequest,
	})
	return nil, false
}

// respondError writes err as an ErrorResponse; ServiceErrors keep their
// status, anything else is a 500.
func respondError(c *gin.Context, err error) {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.Code, dto.ErrorResponse{
			Error:   http.StatusText(svcErr.Code),
			Message: svcErr.Message,
			Code:    svcErr.Code,
			Fields:  svcErr.Fields,
		})
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "Internal Server Error",
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}
