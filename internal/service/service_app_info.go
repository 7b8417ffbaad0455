package service

import (
	"context"

	"github.com/MKhiriev/credstore/internal/config"
	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/models"
)

type appInfoService struct {
	appInfo models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService constructs an AppInfoService exposing the configured
// application version.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	appInfo := models.AppInfo{
		Version:     cfg.Version,
		BuildDate:   valueOrNA(cfg.BuildDate),
		BuildCommit: valueOrNA(cfg.BuildCommit),
	}

	return &appInfoService{
		appInfo: appInfo,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.appInfo
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
