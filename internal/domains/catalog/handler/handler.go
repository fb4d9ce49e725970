package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/domains/catalog/service"
	"recordlabel-backend/internal/shared/authz"
	"recordlabel-backend/internal/shared/middleware"
	"recordlabel-backend/internal/shared/response"
	"recordlabel-backend/internal/shared/utils"
)

// CatalogHandler exposes the catalog use cases over HTTP. Reads are public;
// the service decides what an anonymous visitor may see.
type CatalogHandler struct {
	service service.ServiceInterface
	az      authz.Authorizer
}

// NewCatalogHandler takes the same Authorizer the service decides visibility
// with; nil falls back to the permission checker.
func NewCatalogHandler(svc service.ServiceInterface, az authz.Authorizer) *CatalogHandler {
	if az == nil {
		az = authz.PermissionChecker{}
	}
	return &CatalogHandler{service: svc, az: az}
}

// RegisterRoutes mounts the catalog routes on rg (usually /api/v1).
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/label", h.GetLabel)
	labels := rg.Group("/labels")
	{
		labels.GET("/:slug", h.GetLabelBySlug)
		labels.POST("", h.CreateLabel)
		labels.PUT("/:id", h.UpdateLabel)
	}

	artists := rg.Group("/artists")
	{
		artists.GET("", h.ListArtists)
		artists.GET("/:slug", h.GetArtist)
		artists.GET("/:slug/releases", h.ListReleases)
		artists.POST("", h.CreateArtist)
		artists.PUT("/:id", h.UpdateArtist)
		artists.DELETE("/:id", h.DeleteArtist)
		artists.POST("/:id/restore", h.RestoreArtist)
	}

	rg.GET("/scheduled-release", h.GetNextScheduledRelease)
	releases := rg.Group("/releases")
	{
		releases.GET("/:slug", h.GetRelease)
		releases.GET("/:slug/tracks", h.ListTracks)
		releases.POST("", h.CreateRelease)
		releases.PUT("/:id", h.UpdateRelease)
		releases.PUT("/:id/artists", h.SetReleaseArtists)
		releases.DELETE("/:id", h.DeleteRelease)
		releases.POST("/:id/restore", h.RestoreRelease)
	}

	tracks := rg.Group("/tracks")
	{
		tracks.GET("/:slug", h.GetTrack)
		tracks.POST("", h.CreateTrack)
		tracks.PUT("/:id", h.UpdateTrack)
		tracks.PUT("/:id/artists", h.SetTrackArtists)
		tracks.DELETE("/:id", h.DeleteTrack)
		tracks.POST("/:id/restore", h.RestoreTrack)
	}

	pages := rg.Group("/pages")
	{
		pages.GET("", h.ListPages)
		pages.GET("/:slug", h.GetPage)
		pages.POST("", h.CreatePage)
		pages.PUT("/:id", h.UpdatePage)
		pages.DELETE("/:id", h.DeletePage)
		pages.POST("/:id/restore", h.RestorePage)
	}
}

// handleError maps catalog errors to the response envelope. Field-level
// failures carry the field in details so a form can show it inline.
func handleError(c *gin.Context, err error) {
	status, message, code := model.MapErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).Msg("[CATALOG] Request failed")
	}
	if field := model.FieldOf(err); field != "" {
		response.ErrorWithDetails(c, status, code, message, gin.H{"field": field})
		return
	}
	response.ErrorResponse(c, status, code, message)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return 0, false
	}
	return id, true
}

// labelID reads the required label_id query parameter.
func labelID(c *gin.Context) (int64, bool) {
	id, err := utils.ParseID(c.Query("label_id"))
	if err != nil {
		response.BadRequest(c, "label_id: "+err.Error())
		return 0, false
	}
	return id, true
}

func bind(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.BadRequest(c, err.Error())
		return false
	}
	return true
}

// listMeta tells the client whether hidden rows may be present in the list.
func (h *CatalogHandler) listMeta(c *gin.Context, total int) *response.Meta {
	privileged := authz.IsPrivilegedViewer(h.az, middleware.ActorFrom(c))
	return &response.Meta{Total: total, Privileged: privileged}
}
