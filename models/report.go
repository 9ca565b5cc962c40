// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StepReport records the outcome of a single provisioning step for the
// final run summary.
type StepReport struct {
	// Name is the short step identifier (e.g. "createdb", "migrate").
	Name string `json:"name"`

	// Command is the resolved argv the step executed, space-joined for
	// display.
	Command string `json:"command"`

	// Duration is the wall-clock time the step took.
	Duration time.Duration `json:"duration"`

	// Failed is true when the step terminated the run.
	Failed bool `json:"failed"`
}

// RunReport summarizes one deployment run.
type RunReport struct {
	// RunID is the UUID assigned to this run. Present in every log entry.
	RunID string `json:"run_id"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Steps lists the executed provisioning steps in order.
	Steps []StepReport `json:"steps"`
}
