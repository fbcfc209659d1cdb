package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_CallbackRoute(t *testing.T) {
	h, auth := newTestHandler(t)
	auth.EXPECT().CompleteSignIn(gomock.Any(), models.AuthCallback{Code: "abc"}).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_Health(t *testing.T) {
	h, auth := newTestHandler(t)
	auth.EXPECT().Configured().Return(true)
	auth.EXPECT().Session().Return(&models.Session{AccessToken: "t"})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, healthResponse{Status: "ok", Build: testBuild, Configured: true, SignedIn: true}, got)
}

func TestInit_Version(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Неподдерживаемый метод на существующем маршруте: 404 вместо 405.
func TestInit_WrongMethodReturns404(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			h, _ := newTestHandler(t)

			req := httptest.NewRequest(method, "/auth/callback?code=abc", nil)
			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_RecoversFromPanic(t *testing.T) {
	h, auth := newTestHandler(t)
	auth.EXPECT().CompleteSignIn(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, _ models.AuthCallback) error { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc", nil)
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() { h.Init().ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
