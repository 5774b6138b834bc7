package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-registration/pkg/utils"
)

func TestConnString(t *testing.T) {
	cfg := utils.DatabaseConfig{Host: "db", Port: "5433", Name: "users", User: "app", Password: "secret"}

	assert.Equal(t, "user=app password=secret dbname=users host=db port=5433 sslmode=disable", ConnString(cfg))

	cfg.SSLMode = "require"
	assert.Contains(t, ConnString(cfg), "sslmode=require")
}

func TestURL(t *testing.T) {
	cfg := utils.DatabaseConfig{Host: "db", Port: "5432", Name: "users", User: "app", Password: "p@ss word"}

	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/users?sslmode=disable", URL(cfg))
}

func TestMigrateEmptyURL(t *testing.T) {
	err := Migrate("")
	require.Error(t, err)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationFS.ReadDir("migrations")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "000001_create_users.down.sql", entries[0].Name())
	assert.Equal(t, "000001_create_users.up.sql", entries[1].Name())
}
