package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/shared/middleware"
	"recordlabel-backend/internal/shared/response"
)

// ListArtists - GET /artists?label_id=1
func (h *CatalogHandler) ListArtists(c *gin.Context) {
	labelID, ok := labelID(c)
	if !ok {
		return
	}

	artists, err := h.service.ListArtists(c.Request.Context(), middleware.ActorFrom(c), labelID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, artists, h.listMeta(c, len(artists)))
}

// GetArtist - GET /artists/:slug
func (h *CatalogHandler) GetArtist(c *gin.Context) {
	artist, err := h.service.GetArtist(c.Request.Context(), middleware.ActorFrom(c), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, artist)
}

// CreateArtist - POST /artists
func (h *CatalogHandler) CreateArtist(c *gin.Context) {
	var req model.ArtistInput
	if !bind(c, &req) {
		return
	}

	artist, err := h.service.CreateArtist(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, artist)
}

// UpdateArtist - PUT /artists/:id
func (h *CatalogHandler) UpdateArtist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.ArtistInput
	if !bind(c, &req) {
		return
	}

	artist, err := h.service.UpdateArtist(c.Request.Context(), middleware.ActorFrom(c), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, artist)
}

// DeleteArtist - DELETE /artists/:id (soft delete)
func (h *CatalogHandler) DeleteArtist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	artist, err := h.service.DeleteArtist(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, artist)
}

// RestoreArtist - POST /artists/:id/restore
func (h *CatalogHandler) RestoreArtist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	artist, err := h.service.RestoreArtist(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, artist)
}
