// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-site-deploy/internal/config"
	"github.com/MKhiriev/go-site-deploy/internal/database"
	"github.com/MKhiriev/go-site-deploy/internal/logger"
	"github.com/MKhiriev/go-site-deploy/internal/provision"
	"github.com/MKhiriev/go-site-deploy/internal/render"
	"github.com/MKhiriev/go-site-deploy/internal/utils"
	"github.com/MKhiriev/go-site-deploy/internal/verify"
	"github.com/MKhiriev/go-site-deploy/models"
)

// App runs one deployment.
type App struct {
	cfg      *config.StructuredConfig
	logger   *logger.Logger
	renderer *render.Renderer
	runner   *provision.Runner
	checker  *verify.Checker
	openGate GateOpener
}

// New builds the deployment app from validated configuration.
func New(cfg *config.StructuredConfig, log *logger.Logger) *App {
	return &App{
		cfg:      cfg,
		logger:   log,
		renderer: render.NewRenderer(log),
		runner:   provision.NewRunner(log),
		checker:  verify.NewChecker(log),
		openGate: func(dsn string, log *logger.Logger) (DatabaseGate, error) {
			return database.Open(dsn, log)
		},
	}
}

// Run executes the deployment in order: provision directories, render both
// artifacts, wait for the database server, run the external steps, confirm
// the application database exists, then optionally verify the site over
// HTTP.
//
// The returned report covers every external step that started, even when
// the run fails partway. A failing external command is reported as a
// *provision.StepError so main can map it to ExitStepFailure.
func (a *App) Run(ctx context.Context, runID string) (*models.RunReport, error) {
	log := a.logger.WithRunID(runID)
	ctx = log.WithContext(ctx)

	report := &models.RunReport{RunID: runID, StartedAt: time.Now()}

	// Commands are parsed up front so a malformed command line aborts the
	// run before anything is written.
	createdb, err := provision.ParseStep("createdb", a.cfg.Deploy.CreateDBCmd)
	if err != nil {
		return report, err
	}
	migrate, err := provision.ParseStep("migrate", a.cfg.Deploy.MigrateCmd)
	if err != nil {
		return report, err
	}
	collectstatic, err := provision.ParseStep("collectstatic", a.cfg.Deploy.CollectStaticCmd)
	if err != nil {
		return report, err
	}

	if err := a.provisionDirs(ctx); err != nil {
		return report, err
	}

	settings := a.cfg.SiteSettings()
	if err := a.renderer.WriteSettings(settings, a.cfg.Deploy.SettingsPath); err != nil {
		return report, err
	}
	if err := a.renderer.WriteNginx(settings, a.cfg.Deploy.NginxPath); err != nil {
		return report, err
	}

	gate, err := a.openGate(settings.Database.MaintenanceDSN(), log)
	if err != nil {
		return report, err
	}
	defer gate.Close()

	if err := gate.WaitUntilReady(ctx, a.cfg.Deploy.DBWaitTimeout); err != nil {
		return report, err
	}

	stepReports, err := a.runner.RunAll(ctx, []provision.Step{createdb})
	report.Steps = append(report.Steps, stepReports...)
	if err != nil {
		return report, err
	}

	exists, err := gate.DatabaseExists(ctx, settings.Database.Name)
	if err != nil {
		return report, err
	}
	if !exists {
		return report, fmt.Errorf("%w: %s", database.ErrDatabaseMissing, settings.Database.Name)
	}

	stepReports, err = a.runner.RunAll(ctx, []provision.Step{migrate, collectstatic})
	report.Steps = append(report.Steps, stepReports...)
	if err != nil {
		return report, err
	}

	if err := a.checker.Check(ctx, a.cfg.Deploy.VerifyURL); err != nil {
		return report, err
	}

	log.Info().
		Int("steps", len(report.Steps)).
		Dur("elapsed", time.Since(report.StartedAt)).
		Msg(MsgDeployFinished)
	return report, nil
}

func (a *App) provisionDirs(ctx context.Context) error {
	log := logger.FromContext(ctx)

	dirs := []string{
		a.cfg.Deploy.DataDir,
		filepath.Dir(a.cfg.Deploy.SettingsPath),
		filepath.Dir(a.cfg.Deploy.NginxPath),
		a.cfg.Deploy.StaticRoot,
	}
	for _, dir := range dirs {
		if err := utils.EnsureDir(dir, 0o755); err != nil {
			log.Err(err).Str("func", "*App.provisionDirs").Str("dir", dir).Msg("error: provisioning directory")
			return err
		}
		log.Debug().Str("dir", dir).Msg("directory ready")
	}

	return nil
}
