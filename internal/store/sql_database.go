package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/ff-to-go/internal/config"
	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is the account database connection together with its SQL dialect.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// NewDB opens the database named by cfg.DSN: PostgreSQL for postgres:// and
// postgresql:// URLs, a SQLite file otherwise.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, ErrUnsupportedDSN
	}

	if isPostgresDSN(dsn) {
		return NewConnectPostgres(ctx, dsn, log)
	}
	return NewConnectSQLite(ctx, dsn, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate applies the embedded migrations for the dialect of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the placeholder style
// of the dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// isUniqueViolation reports whether err is a unique constraint violation of
// either driver.
func (db *DB) isUniqueViolation(err error) bool {
	if db.dialect == migrations.DialectPostgres {
		return isPostgresUniqueViolation(err)
	}
	return isSQLiteUniqueViolation(err)
}
