// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"time"

	"github.com/MKhiriev/go-site-deploy/internal/logger"
)

// DatabaseGate is the database-facing surface the orchestrator needs: wait
// for the server, confirm the application database exists, close.
type DatabaseGate interface {
	WaitUntilReady(ctx context.Context, timeout time.Duration) error
	DatabaseExists(ctx context.Context, name string) (bool, error)
	Close() error
}

// GateOpener opens a DatabaseGate for the given maintenance DSN.
type GateOpener func(dsn string, log *logger.Logger) (DatabaseGate, error)
