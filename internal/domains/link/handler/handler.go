package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	catalogmodel "recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/domains/link/model"
	"recordlabel-backend/internal/domains/link/service"
	"recordlabel-backend/internal/shared/middleware"
	"recordlabel-backend/internal/shared/response"
)

type LinkHandler struct {
	service service.ServiceInterface
}

func NewLinkHandler(svc service.ServiceInterface) *LinkHandler {
	return &LinkHandler{service: svc}
}

func (h *LinkHandler) RegisterRoutes(rg *gin.RouterGroup) {
	links := rg.Group("/links")
	{
		links.GET("/:slug", h.GetLinks)
		links.PUT("", h.UpdateLinks)
	}
}

// GetLinks - GET /links/:slug
func (h *LinkHandler) GetLinks(c *gin.Context) {
	links, err := h.service.GetLinks(c.Request.Context(), middleware.ActorFrom(c), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, links)
}

// UpdateLinks - PUT /links
// Body is the flat form; a blank field removes that platform's link.
func (h *LinkHandler) UpdateLinks(c *gin.Context) {
	var form model.LinksForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	links, err := h.service.UpdateLinks(c.Request.Context(), middleware.ActorFrom(c), form)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, links)
}

// handleError reports which platform and URL failed when a link write aborts.
func handleError(c *gin.Context, err error) {
	status, message, code := catalogmodel.MapErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", c.GetString(middleware.RequestIDKey)).
			Msg("[LINKS] Request failed")
	}

	details := gin.H{}
	if field := catalogmodel.FieldOf(err); field != "" {
		details["field"] = field
	}
	if linkErr, ok := model.AsLinkError(err); ok {
		details["platform"] = linkErr.Platform
		details["url"] = linkErr.URL
		details["op"] = string(linkErr.Op)
	}
	if len(details) == 0 {
		response.ErrorResponse(c, status, code, message)
		return
	}
	response.ErrorWithDetails(c, status, code, message, details)
}
