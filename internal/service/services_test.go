package service

import (
	"testing"

	"github.com/fennwick/practice-journal/internal/repository"
	"github.com/fennwick/practice-journal/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServicesWiresAllServices(t *testing.T) {
	services := NewServices(&server.Server{}, &repository.Repositories{})
	require.NotNil(t, services)

	assert.NotNil(t, services.Instruments)
	assert.NotNil(t, services.Templates)
	assert.NotNil(t, services.Logs)
	assert.NotNil(t, services.Analytics)
}
