package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogmodel "recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/domains/link/model"
	"recordlabel-backend/internal/shared/authz"
	"recordlabel-backend/internal/shared/middleware"
	"recordlabel-backend/pkg/jwt"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetLinks(ctx context.Context, actor *authz.Actor, artistSlug string) (*model.ArtistLinks, error) {
	ret := m.Called(ctx, actor, artistSlug)
	out, _ := ret.Get(0).(*model.ArtistLinks)
	return out, ret.Error(1)
}

func (m *mockService) UpdateLinks(ctx context.Context, actor *authz.Actor, form model.LinksForm) (*model.ArtistLinks, error) {
	ret := m.Called(ctx, actor, form)
	out, _ := ret.Get(0).(*model.ArtistLinks)
	return out, ret.Error(1)
}

type errorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newRouter(svc *mockService, tokens *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Actor(tokens))
	NewLinkHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestGetLinks(t *testing.T) {
	svc := new(mockService)
	r := newRouter(svc, jwt.NewManager("secret", time.Hour))
	svc.On("GetLinks", mock.Anything, (*authz.Actor)(nil), "bjork").Return(&model.ArtistLinks{
		ArtistID: 7,
		Music:    []model.Link[model.MusicService]{{Platform: model.Spotify, URL: "https://open.spotify.com/artist/x"}},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/links/bjork", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "open.spotify.com")
	svc.AssertExpectations(t)
}

func TestUpdateLinks_ReportsFailingPlatform(t *testing.T) {
	svc := new(mockService)
	tokens := jwt.NewManager("secret", time.Hour)
	r := newRouter(svc, tokens)

	form := model.LinksForm{ArtistSlug: "bjork", Spotify: "not a url"}
	failure := &model.LinkError{
		Op:       model.OpUpdate,
		Platform: "Spotify",
		URL:      "not a url",
		Err:      catalogmodel.NewValidationError("spotify", "URL is too long."),
	}
	svc.On("UpdateLinks", mock.Anything, mock.AnythingOfType("*authz.Actor"), form).Return(nil, failure)

	token, err := tokens.GenerateAccessToken("owner-1", []string{authz.PermissionAdmin, authz.PermissionLabelOwner})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/links",
		strings.NewReader(`{"artist_slug":"bjork","spotify":"not a url"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, catalogmodel.CodeValidation, body.Error.Code)
	assert.Equal(t, "spotify", body.Error.Details["field"])
	assert.Equal(t, "Spotify", body.Error.Details["platform"])
	assert.Equal(t, "not a url", body.Error.Details["url"])
	svc.AssertExpectations(t)
}
