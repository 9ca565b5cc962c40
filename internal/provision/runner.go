// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provision

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/MKhiriev/go-site-deploy/internal/logger"
	"github.com/MKhiriev/go-site-deploy/models"
)

// Runner executes provisioning steps sequentially.
//
// Step output is streamed to the runner's writers as the command produces
// it, so migration progress shows up in the deploy log immediately instead
// of being buffered.
type Runner struct {
	logger *logger.Logger
	stdout io.Writer
	stderr io.Writer
	dir    string
}

// NewRunner returns a Runner writing step output to the process's own
// stdout and stderr.
func NewRunner(log *logger.Logger) *Runner {
	log.Debug().Msg("creating provision runner")
	return &Runner{
		logger: log,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOutput redirects step output to the given writers.
func (r *Runner) WithOutput(stdout, stderr io.Writer) *Runner {
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// WithWorkDir sets the working directory steps run in. Empty means the
// hook's own working directory.
func (r *Runner) WithWorkDir(dir string) *Runner {
	r.dir = dir
	return r
}

// RunAll executes the steps in order and stops at the first failure.
//
// The returned reports cover every step that started, including a failed
// one. On failure the error is a *StepError naming the step and command.
func (r *Runner) RunAll(ctx context.Context, steps []Step) ([]models.StepReport, error) {
	log := logger.FromContext(ctx)

	reports := make([]models.StepReport, 0, len(steps))
	for _, step := range steps {
		log.Info().
			Str("step", step.Name).
			Str("command", step.CommandLine()).
			Msg("running step")

		started := time.Now()
		err := r.runStep(ctx, step)
		report := models.StepReport{
			Name:     step.Name,
			Command:  step.CommandLine(),
			Duration: time.Since(started),
			Failed:   err != nil,
		}
		reports = append(reports, report)

		if err != nil {
			log.Err(err).
				Str("func", "*Runner.RunAll").
				Str("step", step.Name).
				Dur("duration", report.Duration).
				Msg("error: step failed")
			return reports, &StepError{Step: step.Name, Command: step.CommandLine(), Err: err}
		}

		log.Info().
			Str("step", step.Name).
			Dur("duration", report.Duration).
			Msg("step finished")
	}

	return reports, nil
}

func (r *Runner) runStep(ctx context.Context, step Step) error {
	cmd := exec.CommandContext(ctx, step.Argv[0], step.Argv[1:]...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Dir = r.dir
	cmd.Env = os.Environ()

	return cmd.Run()
}
