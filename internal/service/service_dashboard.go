package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/store"
	"github.com/MKhiriev/credstore/models"
)

// dashboardRecentLimit caps every "recent items" section of the dashboard.
const dashboardRecentLimit = 5

// dashboardService aggregates per-user counters and recent items from the
// credential, note and activity repositories. Nothing is decrypted for the
// dashboard: secrets and note bodies stay sealed.
type dashboardService struct {
	credentialRepository store.CredentialRepository
	noteRepository       store.NoteRepository
	activityRepository   store.ActivityRepository
	logger               *logger.Logger
}

// NewDashboardService constructs a DashboardService over the given
// repositories.
func NewDashboardService(
	credentialRepository store.CredentialRepository,
	noteRepository store.NoteRepository,
	activityRepository store.ActivityRepository,
	logger *logger.Logger,
) DashboardService {
	return &dashboardService{
		credentialRepository: credentialRepository,
		noteRepository:       noteRepository,
		activityRepository:   activityRepository,
		logger:               logger,
	}
}

// Stats gathers the dashboard numbers for one user.
func (s *dashboardService) Stats(ctx context.Context, userID int64) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	var stats models.DashboardStats
	var err error

	if stats.TotalCredentials, err = s.credentialRepository.CountByUser(ctx, userID, false); err != nil {
		log.Err(err).Msg("credential count failed")
		return models.DashboardStats{}, fmt.Errorf("dashboard stats failed: %w", err)
	}
	if stats.FavoriteCredentials, err = s.credentialRepository.CountByUser(ctx, userID, true); err != nil {
		log.Err(err).Msg("favorite credential count failed")
		return models.DashboardStats{}, fmt.Errorf("dashboard stats failed: %w", err)
	}
	if stats.TotalNotes, err = s.noteRepository.CountByUser(ctx, userID, false); err != nil {
		log.Err(err).Msg("note count failed")
		return models.DashboardStats{}, fmt.Errorf("dashboard stats failed: %w", err)
	}
	if stats.FavoriteNotes, err = s.noteRepository.CountByUser(ctx, userID, true); err != nil {
		log.Err(err).Msg("favorite note count failed")
		return models.DashboardStats{}, fmt.Errorf("dashboard stats failed: %w", err)
	}

	recentFilter := models.ListFilter{PerPage: dashboardRecentLimit}.Normalize()

	recentCredentials, err := s.credentialRepository.List(ctx, userID, recentFilter)
	if err != nil {
		log.Err(err).Msg("recent credentials lookup failed")
		return models.DashboardStats{}, fmt.Errorf("dashboard stats failed: %w", err)
	}
	for i := range recentCredentials {
		recentCredentials[i].PasswordEncrypted = ""
		recentCredentials[i].SecretKeyEncrypted = ""
	}
	stats.RecentCredentials = recentCredentials

	recentNotes, err := s.noteRepository.List(ctx, userID, recentFilter)
	if err != nil {
		log.Err(err).Msg("recent notes lookup failed")
		return models.DashboardStats{}, fmt.Errorf("dashboard stats failed: %w", err)
	}
	for i := range recentNotes {
		recentNotes[i].ContentEncrypted = ""
	}
	stats.RecentNotes = recentNotes

	if stats.RecentActivities, err = s.activityRepository.Recent(ctx, userID, dashboardRecentLimit); err != nil {
		log.Err(err).Msg("recent activity lookup failed")
		return models.DashboardStats{}, fmt.Errorf("dashboard stats failed: %w", err)
	}

	if stats.CredentialTypes, err = s.credentialRepository.TypeCounts(ctx, userID, dashboardRecentLimit); err != nil {
		log.Err(err).Msg("credential type breakdown failed")
		return models.DashboardStats{}, fmt.Errorf("dashboard stats failed: %w", err)
	}

	return stats, nil
}
