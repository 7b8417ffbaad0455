package http

import (
	"context"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/service"
	"github.com/MKhiriev/credstore/models"
)

// ─────────────────────────────────────────────
// Mock service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "stub-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1}, nil
}

// ─────────────────────────────────────────────
// Mock service.CredentialService
// ─────────────────────────────────────────────

type mockCredentialService struct {
	createFn         func(ctx context.Context, credential models.Credential) (models.Credential, error)
	getFn            func(ctx context.Context, userID, id int64) (models.Credential, error)
	listFn           func(ctx context.Context, userID int64, filter models.ListFilter) (models.CredentialList, error)
	updateFn         func(ctx context.Context, credential models.Credential) (models.Credential, error)
	deleteFn         func(ctx context.Context, userID, id int64) error
	toggleFavoriteFn func(ctx context.Context, userID, id int64) (bool, error)
}

func (m *mockCredentialService) Create(ctx context.Context, credential models.Credential) (models.Credential, error) {
	return m.createFn(ctx, credential)
}

func (m *mockCredentialService) Get(ctx context.Context, userID, id int64) (models.Credential, error) {
	return m.getFn(ctx, userID, id)
}

func (m *mockCredentialService) List(ctx context.Context, userID int64, filter models.ListFilter) (models.CredentialList, error) {
	return m.listFn(ctx, userID, filter)
}

func (m *mockCredentialService) Update(ctx context.Context, credential models.Credential) (models.Credential, error) {
	return m.updateFn(ctx, credential)
}

func (m *mockCredentialService) Delete(ctx context.Context, userID, id int64) error {
	return m.deleteFn(ctx, userID, id)
}

func (m *mockCredentialService) ToggleFavorite(ctx context.Context, userID, id int64) (bool, error) {
	return m.toggleFavoriteFn(ctx, userID, id)
}

// ─────────────────────────────────────────────
// Mock service.NoteService
// ─────────────────────────────────────────────

type mockNoteService struct {
	createFn         func(ctx context.Context, note models.SecureNote) (models.SecureNote, error)
	getFn            func(ctx context.Context, userID, id int64) (models.SecureNote, error)
	listFn           func(ctx context.Context, userID int64, filter models.ListFilter) (models.SecureNoteList, error)
	updateFn         func(ctx context.Context, note models.SecureNote) (models.SecureNote, error)
	deleteFn         func(ctx context.Context, userID, id int64) error
	toggleFavoriteFn func(ctx context.Context, userID, id int64) (bool, error)
}

func (m *mockNoteService) Create(ctx context.Context, note models.SecureNote) (models.SecureNote, error) {
	return m.createFn(ctx, note)
}

func (m *mockNoteService) Get(ctx context.Context, userID, id int64) (models.SecureNote, error) {
	return m.getFn(ctx, userID, id)
}

func (m *mockNoteService) List(ctx context.Context, userID int64, filter models.ListFilter) (models.SecureNoteList, error) {
	return m.listFn(ctx, userID, filter)
}

func (m *mockNoteService) Update(ctx context.Context, note models.SecureNote) (models.SecureNote, error) {
	return m.updateFn(ctx, note)
}

func (m *mockNoteService) Delete(ctx context.Context, userID, id int64) error {
	return m.deleteFn(ctx, userID, id)
}

func (m *mockNoteService) ToggleFavorite(ctx context.Context, userID, id int64) (bool, error) {
	return m.toggleFavoriteFn(ctx, userID, id)
}

// ─────────────────────────────────────────────
// Mock service.ActivityService
// ─────────────────────────────────────────────

type mockActivityService struct {
	recorded []models.ActivityLog
	recentFn func(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error)
}

func (m *mockActivityService) Record(ctx context.Context, entry models.ActivityLog) {
	m.recorded = append(m.recorded, entry)
}

func (m *mockActivityService) Recent(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx, userID, limit)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock service.DashboardService
// ─────────────────────────────────────────────

type mockDashboardService struct {
	statsFn func(ctx context.Context, userID int64) (models.DashboardStats, error)
}

func (m *mockDashboardService) Stats(ctx context.Context, userID int64) (models.DashboardStats, error) {
	return m.statsFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Mock service.ExportService
// ─────────────────────────────────────────────

type mockExportService struct {
	exportFn func(ctx context.Context, userID int64) ([]byte, error)
}

func (m *mockExportService) ExportCredentialsCSV(ctx context.Context, userID int64) ([]byte, error) {
	return m.exportFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Mock service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{Version: m.version}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service set, filling the
// gaps with benign defaults.
func newTestHandler(services *service.Services) *Handler {
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if services.ActivityService == nil {
		services.ActivityService = &mockActivityService{}
	}
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	return NewHandler(services, logger.Nop())
}
