package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/shared/middleware"
	"recordlabel-backend/internal/shared/response"
)

// GET /releases/:slug/tracks
func (h *CatalogHandler) ListTracks(c *gin.Context) {
	tracks, err := h.service.ListTracks(c.Request.Context(), middleware.ActorFrom(c), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, tracks, h.listMeta(c, len(tracks)))
}

// GET /tracks/:slug
func (h *CatalogHandler) GetTrack(c *gin.Context) {
	track, err := h.service.GetTrack(c.Request.Context(), middleware.ActorFrom(c), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, track)
}

// POST /tracks
func (h *CatalogHandler) CreateTrack(c *gin.Context) {
	var req model.TrackInput
	if !bind(c, &req) {
		return
	}

	track, err := h.service.CreateTrack(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, track)
}

// PUT /tracks/:id
func (h *CatalogHandler) UpdateTrack(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.TrackInput
	if !bind(c, &req) {
		return
	}

	track, err := h.service.UpdateTrack(c.Request.Context(), middleware.ActorFrom(c), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, track)
}

// PUT /tracks/:id/artists
func (h *CatalogHandler) SetTrackArtists(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.ArtistsInput
	if !bind(c, &req) {
		return
	}

	track, err := h.service.SetTrackArtists(c.Request.Context(), middleware.ActorFrom(c), id, req.ArtistIDs)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, track)
}

// DELETE /tracks/:id
func (h *CatalogHandler) DeleteTrack(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	track, err := h.service.DeleteTrack(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, track)
}

// POST /tracks/:id/restore
func (h *CatalogHandler) RestoreTrack(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	track, err := h.service.RestoreTrack(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, track)
}
