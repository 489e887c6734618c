package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "manager-app", cfg.OAuth.ClientID)
	assert.Equal(t, []string{"view_catalogue", "edit_catalogue"}, cfg.OAuth.Scopes)
	assert.Equal(t, 5*time.Minute, cfg.JWT.TokenDuration)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CATALOGUE_SERVICE_URL", "http://catalogue:8081")
	t.Setenv("OAUTH_CLIENT_SCOPES", "view_catalogue")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example,http://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://catalogue:8081", cfg.Catalogue.URL)
	assert.Equal(t, []string{"view_catalogue"}, cfg.OAuth.Scopes)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidDurations(t *testing.T) {
	t.Setenv("CLIENT_TOKEN_DURATION", "soon")

	_, err := Load()
	assert.Error(t, err)
}
