package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	// GetAppVersion returns the version string set at build time.
	GetAppVersion(ctx context.Context) string

	// GetBuildInfo returns version, build date and commit.
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
