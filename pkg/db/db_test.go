package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/story-in-go/pkg/config"
)

func TestConnect_WithConn(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = mockDB.Close() }()

	gormDB, err := Connect(Config{Conn: mockDB, URL: "ignored"})
	require.NoError(t, err)

	mock.ExpectExec("SELECT 1").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.NoError(t, gormDB.Exec("SELECT 1").Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnect_RequiresURL(t *testing.T) {
	db, err := Connect(Config{})
	assert.Nil(t, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URI")
}

func TestConfigFrom(t *testing.T) {
	s, err := config.Load(
		config.WithEnviron(map[string]string{
			"DATABASE_URI":   "postgres://story@localhost/story",
			"OPENAI_API_KEY": "sk-test",
			"DEBUG":          "true",
		}),
		config.WithEnvFile(""),
	)
	require.NoError(t, err)

	cfg := ConfigFrom(s)
	assert.Equal(t, "postgres://story@localhost/story", cfg.URL)
	assert.True(t, cfg.Debug)
	assert.Nil(t, cfg.Conn)
}
