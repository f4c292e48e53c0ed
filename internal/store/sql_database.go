// Package store implements the PostgreSQL persistence layer: connection
// management, embedded schema migrations and one repository per domain
// entity (users, revoked tokens, current weather observations, forecast
// samples and published gist comments).
package store

import (
	"database/sql"

	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
