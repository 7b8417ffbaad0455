package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/store"
	"github.com/MKhiriev/credstore/models"
)

func TestNoteCreate_EncryptsBody(t *testing.T) {
	var savedNote models.SecureNote
	repo := &mockNoteRepository{
		createFn: func(ctx context.Context, note models.SecureNote) (models.SecureNote, error) {
			savedNote = note
			note.ID = 20
			return note, nil
		},
	}

	svc := NewNoteService(repo, testFieldCipher(), logger.NewLogger("test"))

	created, err := svc.Create(context.Background(), models.SecureNote{
		UserID:  1,
		Title:   "Wifi password",
		Type:    models.NoteTypePersonal,
		Content: "hunter2",
	})
	require.NoError(t, err)

	assert.Empty(t, savedNote.Content)
	require.NotEmpty(t, savedNote.ContentEncrypted)
	assert.NotEqual(t, "hunter2", savedNote.ContentEncrypted)

	assert.EqualValues(t, 20, created.ID)
	assert.Equal(t, "hunter2", created.Content)
	assert.Empty(t, created.ContentEncrypted)
}

func TestNoteCreate_Validation(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{}, testFieldCipher(), logger.NewLogger("test"))

	_, err := svc.Create(context.Background(), models.SecureNote{Type: models.NoteTypeWork})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Create(context.Background(), models.SecureNote{Title: "X", Type: "nonsense"})
	assert.ErrorIs(t, err, ErrUnknownNoteType)
}

func TestNoteGet_DecryptsAndTouchesAccess(t *testing.T) {
	cipher := testFieldCipher()
	touched := false

	repo := &mockNoteRepository{
		getByIDFn: func(ctx context.Context, userID, id int64) (models.SecureNote, error) {
			return models.SecureNote{
				ID:               20,
				Title:            "Wifi password",
				Type:             models.NoteTypePersonal,
				ContentEncrypted: cipher.Encrypt("hunter2"),
			}, nil
		},
		touchAccessFn: func(ctx context.Context, userID, id int64) error {
			touched = true
			return nil
		},
	}

	svc := NewNoteService(repo, cipher, logger.NewLogger("test"))

	note, err := svc.Get(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", note.Content)
	assert.Empty(t, note.ContentEncrypted)
	assert.True(t, touched)
}

func TestNoteGet_NotFound(t *testing.T) {
	repo := &mockNoteRepository{
		getByIDFn: func(ctx context.Context, userID, id int64) (models.SecureNote, error) {
			return models.SecureNote{}, store.ErrNoteNotFound
		},
	}

	svc := NewNoteService(repo, testFieldCipher(), logger.NewLogger("test"))

	_, err := svc.Get(context.Background(), 1, 404)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteList_DoesNotDecrypt(t *testing.T) {
	cipher := testFieldCipher()
	repo := &mockNoteRepository{
		listFn: func(ctx context.Context, userID int64, filter models.ListFilter) ([]models.SecureNote, error) {
			return []models.SecureNote{
				{ID: 20, Title: "Wifi password", ContentEncrypted: cipher.Encrypt("hunter2")},
			}, nil
		},
		countFn: func(ctx context.Context, userID int64, filter models.ListFilter) (int64, error) {
			return 1, nil
		},
	}

	svc := NewNoteService(repo, cipher, logger.NewLogger("test"))

	list, err := svc.List(context.Background(), 1, models.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Empty(t, list.Items[0].Content)
	assert.Empty(t, list.Items[0].ContentEncrypted)
	assert.EqualValues(t, 1, list.TotalItems)
}

func TestNoteUpdate_ReEncrypts(t *testing.T) {
	var savedNote models.SecureNote
	repo := &mockNoteRepository{
		updateFn: func(ctx context.Context, note models.SecureNote) (models.SecureNote, error) {
			savedNote = note
			return note, nil
		},
	}

	svc := NewNoteService(repo, testFieldCipher(), logger.NewLogger("test"))

	updated, err := svc.Update(context.Background(), models.SecureNote{
		ID:      20,
		UserID:  1,
		Title:   "Wifi password",
		Type:    models.NoteTypePersonal,
		Content: "better-password",
	})
	require.NoError(t, err)

	assert.Empty(t, savedNote.Content)
	assert.NotEmpty(t, savedNote.ContentEncrypted)
	assert.Equal(t, "better-password", updated.Content)
}

func TestNoteDelete_PropagatesNotFound(t *testing.T) {
	repo := &mockNoteRepository{
		deleteFn: func(ctx context.Context, userID, id int64) error {
			return store.ErrNoteNotFound
		},
	}

	svc := NewNoteService(repo, testFieldCipher(), logger.NewLogger("test"))

	err := svc.Delete(context.Background(), 1, 404)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}
