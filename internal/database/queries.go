// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-site-deploy/internal/logger"
)

func buildDatabaseExistsQuery(name string) (string, []any, error) {
	return sq.Select("1").
		From("pg_database").
		Where(sq.Eq{"datname": name}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// DatabaseExists reports whether a database with the given name is present
// in the server catalog. The receiver must be connected to a maintenance
// database such as postgres, not to the database being checked.
func (db *DB) DatabaseExists(ctx context.Context, name string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDatabaseExistsQuery(name)
	if err != nil {
		log.Err(err).Str("func", "*DB.DatabaseExists").Msg("error: building catalog query")
		return false, fmt.Errorf("build catalog query: %w", err)
	}

	var one int
	err = db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*DB.DatabaseExists").Str("database", name).Msg("error: querying catalog")
		return false, fmt.Errorf("query pg_database: %w", err)
	}

	return true, nil
}
