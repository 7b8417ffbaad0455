package service

import (
	"github.com/MKhiriev/credstore/internal/config"
	"github.com/MKhiriev/credstore/internal/crypto"
	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/store"
)

// Services bundles every service the transport layer needs.
type Services struct {
	AuthService       AuthService
	CredentialService CredentialService
	NoteService       NoteService
	ActivityService   ActivityService
	DashboardService  DashboardService
	ExportService     ExportService
	AppInfoService    AppInfoService
}

// NewServices wires all services to the given repositories and configuration.
// One field cipher derived from the configured encryption secret is shared by
// the credential and note services.
func NewServices(repositories *store.Repositories, recorder ActivityRecorder, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	fieldCipher := crypto.NewFieldCipher(cfg.App.EncryptionSecret, logger)

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	credentialService := NewCredentialService(repositories.CredentialRepository, fieldCipher, logger)
	noteService := NewNoteService(repositories.NoteRepository, fieldCipher, logger)

	return &Services{
		AuthService:       NewAuthService(repositories.UserRepository, cfg.App, logger),
		CredentialService: credentialService,
		NoteService:       noteService,
		ActivityService:   NewActivityService(repositories.ActivityRepository, recorder, logger),
		DashboardService:  NewDashboardService(repositories.CredentialRepository, repositories.NoteRepository, repositories.ActivityRepository, logger),
		ExportService:     NewExportService(repositories.CredentialRepository, logger),
		AppInfoService:    appInfoService,
	}, nil
}
