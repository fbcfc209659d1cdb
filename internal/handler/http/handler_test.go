package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Mock: AppInfoService ----

type mockAppInfoSvc struct {
	info models.AppBuildInfo
}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	return m.info.Version
}

func (m *mockAppInfoSvc) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.info
}

// ---- Helpers ----

var testBuild = models.AppBuildInfo{Version: "1.2.3", Date: "2026-10-01", Commit: "abc123"}

// newTestHandler создаёт Handler с nop-логгером (без вывода в stdout).
func newTestHandler(t *testing.T) (*Handler, *mock.MockClientAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	return &Handler{
		auth:    auth,
		appInfo: &mockAppInfoSvc{info: testBuild},
		logger:  logger.Nop(),
	}, auth
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	appInfo := &mockAppInfoSvc{}
	log := logger.Nop()

	h := NewHandler(auth, appInfo, log)

	require.NotNil(t, h)
	assert.Equal(t, auth, h.auth)
	assert.Equal(t, appInfo, h.appInfo)
	assert.Equal(t, log, h.logger)
}
