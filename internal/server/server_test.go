package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/credstore/internal/config"
	"github.com/MKhiriev/credstore/internal/handler"
	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/service"
)

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:0"}

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}
