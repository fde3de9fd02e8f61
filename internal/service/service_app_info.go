package service

import (
	"context"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/models"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService reports the version baked into the binary. A build
// without a version is refused with [ErrVersionNotSet].
func NewAppInfoService(build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if build.BuildVersion() == "" {
		return nil, ErrVersionNotSet
	}

	return &appInfoService{
		appVersion: build.BuildVersion(),
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
