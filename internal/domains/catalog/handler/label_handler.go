package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/shared/middleware"
	"recordlabel-backend/internal/shared/response"
)

// GET /label
func (h *CatalogHandler) GetLabel(c *gin.Context) {
	label, err := h.service.GetLabel(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, label)
}

// GET /labels/:slug
func (h *CatalogHandler) GetLabelBySlug(c *gin.Context) {
	label, err := h.service.GetLabelBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, label)
}

// POST /labels
func (h *CatalogHandler) CreateLabel(c *gin.Context) {
	var req model.LabelInput
	if !bind(c, &req) {
		return
	}

	label, err := h.service.CreateLabel(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, label)
}

// PUT /labels/:id
func (h *CatalogHandler) UpdateLabel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.LabelInput
	if !bind(c, &req) {
		return
	}

	label, err := h.service.UpdateLabel(c.Request.Context(), middleware.ActorFrom(c), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, label)
}
