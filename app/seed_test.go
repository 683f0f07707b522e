package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laceandcraft/storefront/internal/config"
)

func TestClearSharedCache(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.Config
		wantCleared bool
		wantErr     error
	}{
		{
			name: "memory driver lives in the server process",
			cfg:  config.Config{Cache: config.Cache{Driver: config.CacheMemory}},
		},
		{
			name: "driver not set defaults to memory",
			cfg:  config.Config{},
		},
		{
			name:    "redis without url",
			cfg:     config.Config{Cache: config.Cache{Driver: config.CacheRedis}},
			wantErr: config.ErrEmptyCacheURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleared, err := clearSharedCache(&tt.cfg, nil)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCleared, cleared)
		})
	}
}
