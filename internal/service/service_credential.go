// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/credstore/internal/crypto"
	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/store"
	"github.com/MKhiriev/credstore/models"
)

// credentialService is the concrete implementation of CredentialService.
//
// It enforces the encryption boundary: plaintext Password and SecretKey
// values are encrypted with the shared field cipher before they reach the
// repository, and ciphertext tokens are decrypted only when a single record
// is returned. List results carry metadata only.
type credentialService struct {
	credentialRepository store.CredentialRepository
	fieldCipher          crypto.FieldCipher
	logger               *logger.Logger
}

// NewCredentialService constructs a CredentialService wired to the given
// repository and field cipher.
func NewCredentialService(credentialRepository store.CredentialRepository, fieldCipher crypto.FieldCipher, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentialRepository: credentialRepository,
		fieldCipher:          fieldCipher,
		logger:               logger,
	}
}

// validateCredential checks the caller-supplied fields of a credential.
func validateCredential(credential models.Credential) error {
	if credential.Label == "" {
		return ErrInvalidDataProvided
	}
	if !models.ValidCredentialType(credential.Type) {
		return ErrUnknownCredentialType
	}
	return nil
}

// sealCredential encrypts the transient plaintext secrets in place and
// clears them so only ciphertext travels further down.
func (s *credentialService) sealCredential(credential *models.Credential) {
	credential.PasswordEncrypted = s.fieldCipher.Encrypt(credential.Password)
	credential.SecretKeyEncrypted = s.fieldCipher.Encrypt(credential.SecretKey)
	credential.Password = ""
	credential.SecretKey = ""
}

// openCredential decrypts the ciphertext tokens into the transient plaintext
// fields and drops the tokens so they never cross the API boundary.
func (s *credentialService) openCredential(credential *models.Credential) {
	credential.Password = s.fieldCipher.Decrypt(credential.PasswordEncrypted)
	credential.SecretKey = s.fieldCipher.Decrypt(credential.SecretKeyEncrypted)
	credential.PasswordEncrypted = ""
	credential.SecretKeyEncrypted = ""
}

// Create validates and persists a new credential. The returned record
// carries the decrypted secrets, as the caller just supplied them.
func (s *credentialService) Create(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if err := validateCredential(credential); err != nil {
		log.Error().Str("label", credential.Label).Str("type", credential.Type).Msg("invalid credential data provided")
		return models.Credential{}, err
	}

	s.sealCredential(&credential)

	saved, err := s.credentialRepository.Create(ctx, credential)
	if err != nil {
		log.Err(err).Str("label", credential.Label).Msg("credential creation ended with error")
		return models.Credential{}, fmt.Errorf("credential creation ended with error: %w", err)
	}

	s.openCredential(&saved)
	return saved, nil
}

// Get returns one credential with decrypted secrets and stamps its
// last_accessed time. A failed stamp is logged but does not fail the read.
func (s *credentialService) Get(ctx context.Context, userID, id int64) (models.Credential, error) {
	log := logger.FromContext(ctx)

	credential, err := s.credentialRepository.GetByID(ctx, userID, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("credential lookup failed")
		return models.Credential{}, fmt.Errorf("credential lookup failed: %w", err)
	}

	if err := s.credentialRepository.TouchAccess(ctx, userID, id); err != nil {
		log.Err(err).Int64("id", id).Msg("failed to stamp credential access time")
	}

	s.openCredential(&credential)
	return credential, nil
}

// List returns one page of the user's credentials matching the filter,
// together with pagination info. Secrets are not decrypted for listings:
// Password and SecretKey stay empty on every item.
func (s *credentialService) List(ctx context.Context, userID int64, filter models.ListFilter) (models.CredentialList, error) {
	log := logger.FromContext(ctx)
	filter = filter.Normalize()

	credentials, err := s.credentialRepository.List(ctx, userID, filter)
	if err != nil {
		log.Err(err).Msg("credential listing failed")
		return models.CredentialList{}, fmt.Errorf("credential listing failed: %w", err)
	}

	total, err := s.credentialRepository.Count(ctx, userID, filter)
	if err != nil {
		log.Err(err).Msg("credential counting failed")
		return models.CredentialList{}, fmt.Errorf("credential counting failed: %w", err)
	}

	for i := range credentials {
		credentials[i].PasswordEncrypted = ""
		credentials[i].SecretKeyEncrypted = ""
	}

	return models.CredentialList{
		Items:    credentials,
		PageInfo: models.NewPageInfo(filter, total),
	}, nil
}

// Update validates and overwrites an existing credential. Secrets are
// re-encrypted from the supplied plaintext; the returned record carries the
// decrypted values.
func (s *credentialService) Update(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if err := validateCredential(credential); err != nil {
		log.Error().Int64("id", credential.ID).Str("type", credential.Type).Msg("invalid credential data provided")
		return models.Credential{}, err
	}

	s.sealCredential(&credential)

	updated, err := s.credentialRepository.Update(ctx, credential)
	if err != nil {
		log.Err(err).Int64("id", credential.ID).Msg("credential update ended with error")
		return models.Credential{}, fmt.Errorf("credential update ended with error: %w", err)
	}

	s.openCredential(&updated)
	return updated, nil
}

// Delete removes the user's credential with the given id.
func (s *credentialService) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.credentialRepository.Delete(ctx, userID, id); err != nil {
		log.Err(err).Int64("id", id).Msg("credential deletion ended with error")
		return fmt.Errorf("credential deletion ended with error: %w", err)
	}

	return nil
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (s *credentialService) ToggleFavorite(ctx context.Context, userID, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	isFavorite, err := s.credentialRepository.ToggleFavorite(ctx, userID, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("favorite toggle ended with error")
		return false, fmt.Errorf("favorite toggle ended with error: %w", err)
	}

	return isFavorite, nil
}
