package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/store"
)

// exportService is the concrete implementation of ExportService.
//
// Exports contain credential metadata only. Password and secret key values
// are never decrypted and never written to the export, so a leaked export
// file does not leak secrets.
type exportService struct {
	credentialRepository store.CredentialRepository
	logger               *logger.Logger
}

// NewExportService constructs an ExportService over the given repository.
func NewExportService(credentialRepository store.CredentialRepository, logger *logger.Logger) ExportService {
	return &exportService{
		credentialRepository: credentialRepository,
		logger:               logger,
	}
}

// exportHeader is the column set of the credentials CSV export.
var exportHeader = []string{
	"label", "type", "website_url", "username", "email",
	"note", "tags", "is_favorite", "created_at", "updated_at",
}

// ExportCredentialsCSV renders all of the user's credentials as CSV,
// ordered by label.
func (s *exportService) ExportCredentialsCSV(ctx context.Context, userID int64) ([]byte, error) {
	log := logger.FromContext(ctx)

	credentials, err := s.credentialRepository.AllByUser(ctx, userID)
	if err != nil {
		log.Err(err).Msg("credential export lookup failed")
		return nil, fmt.Errorf("credential export lookup failed: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("error writing export header: %w", err)
	}

	for _, credential := range credentials {
		record := []string{
			credential.Label,
			credential.Type,
			credential.WebsiteURL,
			credential.Username,
			credential.Email,
			credential.Note,
			strings.Join(credential.TagList(), ", "),
			fmt.Sprintf("%t", credential.IsFavorite),
			credential.CreatedAt.Format(time.RFC3339),
			credential.UpdatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("error writing export record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("error flushing export: %w", err)
	}

	log.Debug().Int("credentials", len(credentials)).Msg("credentials export rendered")
	return buf.Bytes(), nil
}
