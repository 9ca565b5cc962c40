package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-site-deploy/internal/app"
	"github.com/MKhiriev/go-site-deploy/internal/config"
	"github.com/MKhiriev/go-site-deploy/internal/logger"
	"github.com/MKhiriev/go-site-deploy/internal/provision"
	"github.com/MKhiriev/go-site-deploy/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	os.Exit(run())
}

func run() int {
	log := logger.NewLogger("go-site-deploy")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		fmt.Fprintf(os.Stderr, "deploy: %s: %v\n", app.MsgConfigurationInvalid, err)
		return app.ExitFailure
	}

	// the settings document hides secret fields, the raw config does not
	log.Debug().Any("settings", cfg.SiteSettings()).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	runID := utils.NewUUIDGenerator().Generate()
	report, err := app.New(cfg, log).Run(ctx, runID)
	if err != nil {
		return failureExitCode(err, os.Stderr)
	}

	log.Debug().Any("report", report).Msg("run report")
	return app.ExitOK
}

// failureExitCode writes a diagnostic for err to w and maps it to the exit
// code: a failed external command is the conventional post-install failure
// (111), anything else is a plain failure (1).
func failureExitCode(err error, w io.Writer) int {
	var stepErr *provision.StepError
	if errors.As(err, &stepErr) {
		fmt.Fprintf(w, "deploy: %s: %q (command: %s): %v\n",
			app.MsgStepFailed, stepErr.Step, stepErr.Command, stepErr.Err)
		return app.ExitStepFailure
	}

	fmt.Fprintf(w, "deploy: %s: %v\n", app.MsgDeployFailed, err)
	return app.ExitFailure
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
