// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/migrations"
)

// sqliteStore is the durable implementation of [SessionStore], backed by a
// single-table SQLite database. It plays the role of the browser's
// persistent storage: per-user settings survive a process restart while the
// session core keeps living in the ephemeral memory store.
type sqliteStore struct {
	db      *sql.DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

// NewSQLiteStore opens (creating if necessary) the SQLite database at path,
// runs pending schema migrations, and returns a [SessionStore] over its kv
// table. Returns an error if the database cannot be opened or migrated.
func NewSQLiteStore(path string, logger *logger.Logger) (SessionStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite storage: %w", err)
	}

	if err := migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	logger.Debug().Str("path", path).Msg("sqlite store opened")

	return &sqliteStore{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

// Get implements [SessionStore]. Any driver error is logged and reported as
// absence; a broken durable store must read as "no persisted state".
func (s *sqliteStore) Get(key string) (string, bool) {
	query, args, err := s.builder.
		Select("v").
		From("kv").
		Where(sq.Eq{"k": key}).
		ToSql()
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("building select query failed")
		return "", false
	}

	var value string
	if err := s.db.QueryRow(query, args...).Scan(&value); err != nil {
		if err != sql.ErrNoRows {
			s.logger.Err(err).Str("key", key).Msg("reading kv row failed")
		}
		return "", false
	}

	return value, true
}

// Set implements [SessionStore] using an upsert on the primary key.
func (s *sqliteStore) Set(key, value string) error {
	query, args, err := s.builder.
		Insert("kv").
		Columns("k", "v").
		Values(key, value).
		Suffix("ON CONFLICT(k) DO UPDATE SET v = excluded.v").
		ToSql()
	if err != nil {
		return fmt.Errorf("building upsert query: %w", err)
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("writing kv row: %w", err)
	}

	return nil
}

// Remove implements [SessionStore]. Errors are logged and swallowed.
func (s *sqliteStore) Remove(key string) {
	query, args, err := s.builder.
		Delete("kv").
		Where(sq.Eq{"k": key}).
		ToSql()
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("building delete query failed")
		return
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		s.logger.Err(err).Str("key", key).Msg("deleting kv row failed")
	}
}

// Clear implements [SessionStore]. Errors are logged and swallowed.
func (s *sqliteStore) Clear() {
	if _, err := s.db.Exec("DELETE FROM kv"); err != nil {
		s.logger.Err(err).Msg("clearing kv table failed")
	}
}
