package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NotOriginal333/hotel-lab4/internal/resortapi"
	apimocks "github.com/NotOriginal333/hotel-lab4/internal/resortapi/mocks"
	"github.com/NotOriginal333/hotel-lab4/internal/session"
	storemocks "github.com/NotOriginal333/hotel-lab4/internal/session/mocks"
	"github.com/NotOriginal333/hotel-lab4/internal/web/controller"
	"github.com/NotOriginal333/hotel-lab4/internal/web/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (http.Handler, *apimocks.MockAPI, *storemocks.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := apimocks.NewMockAPI(ctrl)
	store := storemocks.NewMockStore(ctrl)

	cottageService, err := service.NewCottageService(api, 20)
	require.NoError(t, err)

	sessions := session.NewManager(store, session.NewCookieCodec("0123456789abcdef", time.Hour), time.Hour, false)
	srv, err := NewServer(
		sessions,
		controller.NewAuthController(service.NewAuthService(api)),
		controller.NewCottageController(cottageService),
		controller.NewHealthController(map[string]controller.Pinger{
			"sessions": controller.PingFunc(func(context.Context) error { return nil }),
		}),
	)
	require.NoError(t, err)
	return srv.Engine(), api, store
}

func TestServer_RootRedirects(t *testing.T) {
	h, _, store := newTestServer(t)
	store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), time.Hour).Return(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/cottages", rec.Header().Get("Location"))
}

func TestServer_CottagesIssueSessionCookie(t *testing.T) {
	h, api, store := newTestServer(t)
	api.EXPECT().ListCottages(gomock.Any(), 1, 20).Return([]resortapi.Cottage{{ID: 1, Name: "Alder"}}, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), time.Hour).
		DoAndReturn(func(_ context.Context, _ string, data *session.Data, _ time.Duration) error {
			require.NotNil(t, data.Cottages)
			assert.Len(t, data.Cottages.Cottages, 1)
			return nil
		})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cottages", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alder")
	assert.Contains(t, rec.Header().Get("Set-Cookie"), session.CookieName+"=")
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestServer_HealthSkipsSession(t *testing.T) {
	h, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
	assert.Equal(t, "req-1", rec.Header().Get(RequestIDHeader))
	assert.JSONEq(t, `{"success":true,"code":200,"extras":{"status":"ok","dependencies":{"sessions":"ok"}}}`, rec.Body.String())
}

func TestServer_UnknownRoute(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
