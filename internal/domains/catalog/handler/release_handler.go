package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/shared/middleware"
	"recordlabel-backend/internal/shared/response"
)

// ========== GET /artists/:slug/releases ==========
func (h *CatalogHandler) ListReleases(c *gin.Context) {
	releases, err := h.service.ListReleases(c.Request.Context(), middleware.ActorFrom(c), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, releases, h.listMeta(c, len(releases)))
}

// ========== GET /scheduled-release?label_id=1 ==========
// Responds with data null when nothing is scheduled.
func (h *CatalogHandler) GetNextScheduledRelease(c *gin.Context) {
	labelID, ok := labelID(c)
	if !ok {
		return
	}

	release, err := h.service.GetNextScheduledRelease(c.Request.Context(), middleware.ActorFrom(c), labelID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, release)
}

// ========== GET /releases/:slug ==========
func (h *CatalogHandler) GetRelease(c *gin.Context) {
	release, err := h.service.GetRelease(c.Request.Context(), middleware.ActorFrom(c), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, release)
}

// ========== POST /releases ==========
func (h *CatalogHandler) CreateRelease(c *gin.Context) {
	var req model.ReleaseInput
	if !bind(c, &req) {
		return
	}

	release, err := h.service.CreateRelease(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, release)
}

// ========== PUT /releases/:id ==========
// artist_ids replaces the whole membership.
func (h *CatalogHandler) UpdateRelease(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.ReleaseInput
	if !bind(c, &req) {
		return
	}

	release, err := h.service.UpdateRelease(c.Request.Context(), middleware.ActorFrom(c), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, release)
}

// ========== PUT /releases/:id/artists ==========
func (h *CatalogHandler) SetReleaseArtists(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.ArtistsInput
	if !bind(c, &req) {
		return
	}

	release, err := h.service.SetReleaseArtists(c.Request.Context(), middleware.ActorFrom(c), id, req.ArtistIDs, req.PrimaryArtistID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, release)
}

// ========== DELETE /releases/:id ==========
func (h *CatalogHandler) DeleteRelease(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	release, err := h.service.DeleteRelease(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, release)
}

// ========== POST /releases/:id/restore ==========
func (h *CatalogHandler) RestoreRelease(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	release, err := h.service.RestoreRelease(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, release)
}
