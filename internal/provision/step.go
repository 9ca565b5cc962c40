// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provision

import (
	"fmt"
	"strings"
)

// Step is one external command the hook runs during a deploy.
type Step struct {
	// Name identifies the step in logs and error messages.
	Name string
	// Argv is the executable followed by its arguments.
	Argv []string
}

// ParseStep splits a configured command line into a Step. Splitting is on
// whitespace only; arguments that need shell quoting belong in a wrapper
// script.
func ParseStep(name, commandLine string) (Step, error) {
	argv := strings.Fields(commandLine)
	if len(argv) == 0 {
		return Step{}, fmt.Errorf("%w: %s", ErrEmptyCommand, name)
	}

	return Step{Name: name, Argv: argv}, nil
}

// CommandLine renders the step's argv for logs and error messages.
func (s Step) CommandLine() string {
	return strings.Join(s.Argv, " ")
}
