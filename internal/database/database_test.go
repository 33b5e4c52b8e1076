package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavebatch/converter-api/internal/models"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		dbPath  string
		wantErr bool
	}{
		{
			name:   "in-memory database",
			dbPath: ":memory:",
		},
		{
			name:   "file database",
			dbPath: filepath.Join(t.TempDir(), "test.db"),
		},
		{
			name:   "nested directory is created",
			dbPath: filepath.Join(t.TempDir(), "data", "nested", "test.db"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, conn)
			assert.NoError(t, conn.HealthCheck())
			assert.NoError(t, conn.Close())
		})
	}
}

func TestAutoMigrate(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.AutoMigrate(&models.Conversion{}, &models.Waveform{}))

	assert.True(t, conn.Migrator().HasTable(&models.Conversion{}))
	assert.True(t, conn.Migrator().HasTable(&models.Waveform{}))
}

func TestHealthCheck_Uninitialized(t *testing.T) {
	var db *DB
	assert.Error(t, db.HealthCheck())
}
