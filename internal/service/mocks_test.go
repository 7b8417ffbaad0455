package service

import (
	"context"

	"github.com/MKhiriev/credstore/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByLoginFn func(ctx context.Context, login string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findUserByLoginFn != nil {
		return m.findUserByLoginFn(ctx, login)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.CredentialRepository
// ─────────────────────────────────────────────

type mockCredentialRepository struct {
	createFn         func(ctx context.Context, credential models.Credential) (models.Credential, error)
	getByIDFn        func(ctx context.Context, userID, id int64) (models.Credential, error)
	listFn           func(ctx context.Context, userID int64, filter models.ListFilter) ([]models.Credential, error)
	countFn          func(ctx context.Context, userID int64, filter models.ListFilter) (int64, error)
	allByUserFn      func(ctx context.Context, userID int64) ([]models.Credential, error)
	updateFn         func(ctx context.Context, credential models.Credential) (models.Credential, error)
	deleteFn         func(ctx context.Context, userID, id int64) error
	toggleFavoriteFn func(ctx context.Context, userID, id int64) (bool, error)
	touchAccessFn    func(ctx context.Context, userID, id int64) error
	countByUserFn    func(ctx context.Context, userID int64, favoritesOnly bool) (int64, error)
	typeCountsFn     func(ctx context.Context, userID int64, limit int) ([]models.TypeCount, error)
}

func (m *mockCredentialRepository) Create(ctx context.Context, credential models.Credential) (models.Credential, error) {
	if m.createFn != nil {
		return m.createFn(ctx, credential)
	}
	return credential, nil
}

func (m *mockCredentialRepository) GetByID(ctx context.Context, userID, id int64) (models.Credential, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, userID, id)
	}
	return models.Credential{}, nil
}

func (m *mockCredentialRepository) List(ctx context.Context, userID int64, filter models.ListFilter) ([]models.Credential, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, filter)
	}
	return nil, nil
}

func (m *mockCredentialRepository) Count(ctx context.Context, userID int64, filter models.ListFilter) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, userID, filter)
	}
	return 0, nil
}

func (m *mockCredentialRepository) AllByUser(ctx context.Context, userID int64) ([]models.Credential, error) {
	if m.allByUserFn != nil {
		return m.allByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockCredentialRepository) Update(ctx context.Context, credential models.Credential) (models.Credential, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, credential)
	}
	return credential, nil
}

func (m *mockCredentialRepository) Delete(ctx context.Context, userID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

func (m *mockCredentialRepository) ToggleFavorite(ctx context.Context, userID, id int64) (bool, error) {
	if m.toggleFavoriteFn != nil {
		return m.toggleFavoriteFn(ctx, userID, id)
	}
	return false, nil
}

func (m *mockCredentialRepository) TouchAccess(ctx context.Context, userID, id int64) error {
	if m.touchAccessFn != nil {
		return m.touchAccessFn(ctx, userID, id)
	}
	return nil
}

func (m *mockCredentialRepository) CountByUser(ctx context.Context, userID int64, favoritesOnly bool) (int64, error) {
	if m.countByUserFn != nil {
		return m.countByUserFn(ctx, userID, favoritesOnly)
	}
	return 0, nil
}

func (m *mockCredentialRepository) TypeCounts(ctx context.Context, userID int64, limit int) ([]models.TypeCount, error) {
	if m.typeCountsFn != nil {
		return m.typeCountsFn(ctx, userID, limit)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	createFn         func(ctx context.Context, note models.SecureNote) (models.SecureNote, error)
	getByIDFn        func(ctx context.Context, userID, id int64) (models.SecureNote, error)
	listFn           func(ctx context.Context, userID int64, filter models.ListFilter) ([]models.SecureNote, error)
	countFn          func(ctx context.Context, userID int64, filter models.ListFilter) (int64, error)
	updateFn         func(ctx context.Context, note models.SecureNote) (models.SecureNote, error)
	deleteFn         func(ctx context.Context, userID, id int64) error
	toggleFavoriteFn func(ctx context.Context, userID, id int64) (bool, error)
	touchAccessFn    func(ctx context.Context, userID, id int64) error
	countByUserFn    func(ctx context.Context, userID int64, favoritesOnly bool) (int64, error)
}

func (m *mockNoteRepository) Create(ctx context.Context, note models.SecureNote) (models.SecureNote, error) {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) GetByID(ctx context.Context, userID, id int64) (models.SecureNote, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, userID, id)
	}
	return models.SecureNote{}, nil
}

func (m *mockNoteRepository) List(ctx context.Context, userID int64, filter models.ListFilter) ([]models.SecureNote, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, filter)
	}
	return nil, nil
}

func (m *mockNoteRepository) Count(ctx context.Context, userID int64, filter models.ListFilter) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, userID, filter)
	}
	return 0, nil
}

func (m *mockNoteRepository) Update(ctx context.Context, note models.SecureNote) (models.SecureNote, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) Delete(ctx context.Context, userID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

func (m *mockNoteRepository) ToggleFavorite(ctx context.Context, userID, id int64) (bool, error) {
	if m.toggleFavoriteFn != nil {
		return m.toggleFavoriteFn(ctx, userID, id)
	}
	return false, nil
}

func (m *mockNoteRepository) TouchAccess(ctx context.Context, userID, id int64) error {
	if m.touchAccessFn != nil {
		return m.touchAccessFn(ctx, userID, id)
	}
	return nil
}

func (m *mockNoteRepository) CountByUser(ctx context.Context, userID int64, favoritesOnly bool) (int64, error) {
	if m.countByUserFn != nil {
		return m.countByUserFn(ctx, userID, favoritesOnly)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.ActivityRepository
// ─────────────────────────────────────────────

type mockActivityRepository struct {
	saveFn   func(ctx context.Context, entry models.ActivityLog) error
	recentFn func(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error)
}

func (m *mockActivityRepository) Save(ctx context.Context, entry models.ActivityLog) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, entry)
	}
	return nil
}

func (m *mockActivityRepository) Recent(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx, userID, limit)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: ActivityRecorder
// ─────────────────────────────────────────────

type mockActivityRecorder struct {
	enqueueFn func(entry models.ActivityLog) bool

	entries []models.ActivityLog
}

func (m *mockActivityRecorder) Enqueue(entry models.ActivityLog) bool {
	if m.enqueueFn != nil {
		return m.enqueueFn(entry)
	}
	m.entries = append(m.entries, entry)
	return true
}
