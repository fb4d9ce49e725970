package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/shared/middleware"
	"recordlabel-backend/internal/shared/response"
)

func (h *CatalogHandler) ListPages(c *gin.Context) {
	labelID, ok := labelID(c)
	if !ok {
		return
	}

	pages, err := h.service.ListPages(c.Request.Context(), middleware.ActorFrom(c), labelID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, pages, h.listMeta(c, len(pages)))
}

func (h *CatalogHandler) GetPage(c *gin.Context) {
	page, err := h.service.GetPage(c.Request.Context(), middleware.ActorFrom(c), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *CatalogHandler) CreatePage(c *gin.Context) {
	var req model.PageInput
	if !bind(c, &req) {
		return
	}

	page, err := h.service.CreatePage(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, page)
}

func (h *CatalogHandler) UpdatePage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.PageInput
	if !bind(c, &req) {
		return
	}

	page, err := h.service.UpdatePage(c.Request.Context(), middleware.ActorFrom(c), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *CatalogHandler) DeletePage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	page, err := h.service.DeletePage(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *CatalogHandler) RestorePage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	page, err := h.service.RestorePage(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}
