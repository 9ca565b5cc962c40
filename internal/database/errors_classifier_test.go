// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code}
}

func TestPingErrorClassifier_Classify(t *testing.T) {
	classifier := PingErrorClassifier{}

	tests := []struct {
		name string
		err  error
		want PingClassification
	}{
		{
			name: "invalid password is fatal",
			err:  pgError(pgerrcode.InvalidPassword),
			want: Fatal,
		},
		{
			name: "invalid authorization specification is fatal",
			err:  pgError(pgerrcode.InvalidAuthorizationSpecification),
			want: Fatal,
		},
		{
			name: "connection failure is transient",
			err:  pgError(pgerrcode.ConnectionFailure),
			want: Transient,
		},
		{
			name: "cannot connect now is transient",
			err:  pgError(pgerrcode.CannotConnectNow),
			want: Transient,
		},
		{
			name: "syntax error is fatal",
			err:  pgError(pgerrcode.SyntaxError),
			want: Fatal,
		},
		{
			name: "wrapped server error is unwrapped",
			err:  fmt.Errorf("ping: %w", pgError(pgerrcode.InvalidPassword)),
			want: Fatal,
		},
		{
			name: "plain network error is transient",
			err:  errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			want: Transient,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, classifier.Classify(test.err))
		})
	}
}

func TestIsAuthenticationError(t *testing.T) {
	assert.True(t, isAuthenticationError(pgError(pgerrcode.InvalidPassword)))
	assert.True(t, isAuthenticationError(pgError(pgerrcode.InvalidAuthorizationSpecification)))
	assert.False(t, isAuthenticationError(pgError(pgerrcode.CannotConnectNow)))
	assert.False(t, isAuthenticationError(errors.New("connection refused")))
}
