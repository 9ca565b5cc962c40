// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package database

import "errors"

// ErrAuthenticationFailed indicates the server rejected the configured
// credentials. Waiting longer will not help, so the readiness loop aborts
// immediately when it sees this error.
var ErrAuthenticationFailed = errors.New("database authentication failed")

// ErrDatabaseNotReady indicates the server did not accept connections
// before the wait deadline expired.
var ErrDatabaseNotReady = errors.New("database not ready before deadline")

// ErrDatabaseMissing indicates the application database does not exist in
// the server catalog after the creation script ran.
var ErrDatabaseMissing = errors.New("application database does not exist")
