package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/credstore/internal/crypto"
	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/store"
	"github.com/MKhiriev/credstore/models"
)

// noteService is the concrete implementation of NoteService. It applies the
// same encryption boundary as credentialService: the note body is encrypted
// before any write and decrypted only for single-record reads.
type noteService struct {
	noteRepository store.NoteRepository
	fieldCipher    crypto.FieldCipher
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given repository and
// field cipher.
func NewNoteService(noteRepository store.NoteRepository, fieldCipher crypto.FieldCipher, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		fieldCipher:    fieldCipher,
		logger:         logger,
	}
}

// validateNote checks the caller-supplied fields of a secure note.
func validateNote(note models.SecureNote) error {
	if note.Title == "" {
		return ErrInvalidDataProvided
	}
	if !models.ValidNoteType(note.Type) {
		return ErrUnknownNoteType
	}
	return nil
}

// sealNote encrypts the plaintext body in place and clears it.
func (s *noteService) sealNote(note *models.SecureNote) {
	note.ContentEncrypted = s.fieldCipher.Encrypt(note.Content)
	note.Content = ""
}

// openNote decrypts the ciphertext token into the transient body and drops
// the token.
func (s *noteService) openNote(note *models.SecureNote) {
	note.Content = s.fieldCipher.Decrypt(note.ContentEncrypted)
	note.ContentEncrypted = ""
}

// Create validates and persists a new secure note. The returned record
// carries the decrypted body.
func (s *noteService) Create(ctx context.Context, note models.SecureNote) (models.SecureNote, error) {
	log := logger.FromContext(ctx)

	if err := validateNote(note); err != nil {
		log.Error().Str("title", note.Title).Str("type", note.Type).Msg("invalid note data provided")
		return models.SecureNote{}, err
	}

	s.sealNote(&note)

	saved, err := s.noteRepository.Create(ctx, note)
	if err != nil {
		log.Err(err).Str("title", note.Title).Msg("note creation ended with error")
		return models.SecureNote{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	s.openNote(&saved)
	return saved, nil
}

// Get returns one note with its decrypted body and stamps its last_accessed
// time. A failed stamp is logged but does not fail the read.
func (s *noteService) Get(ctx context.Context, userID, id int64) (models.SecureNote, error) {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.GetByID(ctx, userID, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("note lookup failed")
		return models.SecureNote{}, fmt.Errorf("note lookup failed: %w", err)
	}

	if err := s.noteRepository.TouchAccess(ctx, userID, id); err != nil {
		log.Err(err).Int64("id", id).Msg("failed to stamp note access time")
	}

	s.openNote(&note)
	return note, nil
}

// List returns one page of the user's notes matching the filter, together
// with pagination info. Note bodies are not decrypted for listings.
func (s *noteService) List(ctx context.Context, userID int64, filter models.ListFilter) (models.SecureNoteList, error) {
	log := logger.FromContext(ctx)
	filter = filter.Normalize()

	notes, err := s.noteRepository.List(ctx, userID, filter)
	if err != nil {
		log.Err(err).Msg("note listing failed")
		return models.SecureNoteList{}, fmt.Errorf("note listing failed: %w", err)
	}

	total, err := s.noteRepository.Count(ctx, userID, filter)
	if err != nil {
		log.Err(err).Msg("note counting failed")
		return models.SecureNoteList{}, fmt.Errorf("note counting failed: %w", err)
	}

	for i := range notes {
		notes[i].ContentEncrypted = ""
	}

	return models.SecureNoteList{
		Items:    notes,
		PageInfo: models.NewPageInfo(filter, total),
	}, nil
}

// Update validates and overwrites an existing note. The body is
// re-encrypted from the supplied plaintext.
func (s *noteService) Update(ctx context.Context, note models.SecureNote) (models.SecureNote, error) {
	log := logger.FromContext(ctx)

	if err := validateNote(note); err != nil {
		log.Error().Int64("id", note.ID).Str("type", note.Type).Msg("invalid note data provided")
		return models.SecureNote{}, err
	}

	s.sealNote(&note)

	updated, err := s.noteRepository.Update(ctx, note)
	if err != nil {
		log.Err(err).Int64("id", note.ID).Msg("note update ended with error")
		return models.SecureNote{}, fmt.Errorf("note update ended with error: %w", err)
	}

	s.openNote(&updated)
	return updated, nil
}

// Delete removes the user's note with the given id.
func (s *noteService) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.noteRepository.Delete(ctx, userID, id); err != nil {
		log.Err(err).Int64("id", id).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (s *noteService) ToggleFavorite(ctx context.Context, userID, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	isFavorite, err := s.noteRepository.ToggleFavorite(ctx, userID, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("favorite toggle ended with error")
		return false, fmt.Errorf("favorite toggle ended with error: %w", err)
	}

	return isFavorite, nil
}
