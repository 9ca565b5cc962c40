// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package database

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PingClassification tells the readiness loop what to do with a failed ping.
type PingClassification int

const (
	// Fatal errors abort the wait immediately. The server answered and told
	// us something that waiting cannot fix, such as bad credentials.
	Fatal PingClassification = iota
	// Transient errors are expected while the server is still starting up.
	// The loop sleeps and pings again.
	Transient
)

// PingErrorClassifier decides whether a failed readiness ping is worth
// retrying.
type PingErrorClassifier struct{}

// Classify inspects the error chain of a failed ping.
//
// A *pgconn.PgError means the server is up and talking to us; only a subset
// of server errors is treated as transient. Anything else, typically a
// net.OpError while the container is still booting, is transient.
func (c PingErrorClassifier) Classify(err error) PingClassification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return c.classifyPgError(pgErr)
	}

	return Transient
}

// isAuthenticationError reports whether err is a class 28 server error,
// meaning the configured credentials were rejected.
func isAuthenticationError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgerrcode.IsInvalidAuthorizationSpecification(pgErr.Code)
}

func (c PingErrorClassifier) classifyPgError(pgErr *pgconn.PgError) PingClassification {
	switch {
	case pgerrcode.IsInvalidAuthorizationSpecification(pgErr.Code):
		// 28000 invalid_authorization_specification, 28P01 invalid_password.
		return Fatal
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsOperatorIntervention(pgErr.Code):
		// Class 08 connection exceptions and class 57 operator interventions
		// (cannot_connect_now during startup, admin shutdown) resolve on
		// their own once the server finishes booting.
		return Transient
	default:
		return Fatal
	}
}
