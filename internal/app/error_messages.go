// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the deployment run together: configuration, artifact
// rendering, the database readiness gate, the external provisioning steps,
// and the optional post-deploy verification.
//
// All Msg* constants are human-readable message strings written to stderr
// or log entries to describe the outcome of a run. Keeping them in one
// place ensures consistent wording throughout the tool.
package app

const (
	// MsgConfigurationInvalid is printed when required variables are
	// missing or malformed; nothing has been written at that point.
	MsgConfigurationInvalid = "configuration invalid"

	// MsgStepFailed is printed when one of the external provisioning
	// commands terminates the run.
	MsgStepFailed = "provisioning step failed"

	// MsgDeployFailed is printed for every non-step failure: rendering,
	// directory provisioning, the database wait, or verification.
	MsgDeployFailed = "deploy failed"

	// MsgDeployFinished is logged when the full run succeeds.
	MsgDeployFinished = "deploy finished"
)

// Exit codes of the deploy binary.
const (
	// ExitOK means every step succeeded.
	ExitOK = 0

	// ExitFailure covers configuration, rendering, and database-wait
	// failures.
	ExitFailure = 1

	// ExitStepFailure is the conventional post-install failure code the
	// platform watches for; it is reserved for failed external commands.
	ExitStepFailure = 111
)
