// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package verify performs the optional post-deploy smoke check: a GET
// against a configured URL that must answer with a success status before
// the deploy is declared healthy.
package verify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-site-deploy/internal/logger"
)

// ErrVerificationFailed indicates the smoke-check URL never answered with a
// success status.
var ErrVerificationFailed = errors.New("post-deploy verification failed")

const (
	defaultTimeout    = 10 * time.Second
	defaultRetryCount = 3
	retryWaitTime     = 2 * time.Second
)

// Checker issues the post-deploy smoke check.
type Checker struct {
	client *resty.Client
	logger *logger.Logger
}

// NewChecker builds a Checker with bounded retries. Retries use resty's
// backoff and cover both transport errors and non-2xx answers, since the
// site may still be warming up right after collectstatic.
func NewChecker(log *logger.Logger) *Checker {
	log.Debug().Msg("creating verification checker")
	cli := resty.New().
		SetTimeout(defaultTimeout).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(retryWaitTime).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	return &Checker{client: cli, logger: log}
}

// Check issues a GET against url and returns nil if the final answer is a
// 2xx. An empty url disables the check.
func (c *Checker) Check(ctx context.Context, url string) error {
	log := logger.FromContext(ctx)

	url = strings.TrimSpace(url)
	if url == "" {
		log.Debug().Msg("no verification url configured, skipping")
		return nil
	}

	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		log.Err(err).Str("func", "*Checker.Check").Str("url", url).Msg("error: verification request failed")
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		log.Error().
			Str("func", "*Checker.Check").
			Int("status", resp.StatusCode()).
			Str("url", url).
			Msg("error: verification answered with non-success status")
		return fmt.Errorf("%w: http %d", ErrVerificationFailed, resp.StatusCode())
	}

	log.Info().
		Int("status", resp.StatusCode()).
		Str("url", url).
		Msg("site answered")
	return nil
}
