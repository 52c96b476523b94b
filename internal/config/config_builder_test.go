package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_DefaultsFillUnsetFields(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultAuthToken, cfg.App.AuthToken)
}

func TestConfigBuilder_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{AuthToken: "from-env"}},
		&StructuredConfig{App: App{AuthToken: "from-flags"}, Server: Server{HTTPAddress: "flags:9000"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.AuthToken)
	assert.Equal(t, "flags:9000", cfg.Server.HTTPAddress, "later source fills fields the first left unset")
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
}

func TestConfigBuilder_JSONSourceMerged(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"http_address": "json-host:7777", "request_timeout": "5s"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "json-host:7777", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

func TestConfigBuilder_JSONErrorSurfacesInBuild(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})
	b.withJSON()

	_, err := b.build()
	assert.Error(t, err)
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: StructuredConfig{
				App:    App{AuthToken: "secret"},
				Server: Server{HTTPAddress: "localhost:8080"},
			},
		},
		{
			name:    "missing address",
			cfg:     StructuredConfig{App: App{AuthToken: "secret"}},
			wantErr: ErrNoServerAddress,
		},
		{
			name:    "missing token",
			cfg:     StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}},
			wantErr: ErrNoAuthToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
