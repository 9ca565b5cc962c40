// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provision

import (
	"errors"
	"fmt"
)

// ErrEmptyCommand indicates a step was configured with a blank command line.
var ErrEmptyCommand = errors.New("step command is empty")

// StepError reports which provisioning step failed and why.
type StepError struct {
	Step    string
	Command string
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed (%s): %v", e.Step, e.Command, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
