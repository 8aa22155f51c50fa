package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/liv8solar/solar-leads/internal/config"
	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/database"
	"github.com/liv8solar/solar-leads/internal/infra/http/handlers"
	"github.com/liv8solar/solar-leads/internal/infra/http/middleware"
	"github.com/liv8solar/solar-leads/internal/infra/http/router"
	"github.com/liv8solar/solar-leads/internal/infra/integration/googlesolar"
	"github.com/liv8solar/solar-leads/internal/infra/integration/opensolar"
	"github.com/liv8solar/solar-leads/internal/infra/integration/pushlap"
	"github.com/liv8solar/solar-leads/internal/infra/integration/sheets"
	"github.com/liv8solar/solar-leads/internal/infra/integration/taskmagic"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
	"github.com/liv8solar/solar-leads/internal/infra/mail"
	"github.com/liv8solar/solar-leads/internal/infra/memory"
	"github.com/liv8solar/solar-leads/internal/infra/queue"
	"github.com/liv8solar/solar-leads/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

type repositories struct {
	leads         entity.LeadRepositoryInterface
	calculations  entity.SolarCalculationRepositoryInterface
	consultations entity.ConsultationRepositoryInterface
	store         *memory.Store
}

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Env)

	// 1. Storage
	repos := repositories{store: memory.NewStore()}
	repos.leads = repos.store.Leads
	repos.calculations = repos.store.Calculations
	repos.consultations = repos.store.Consultations

	var db *sql.DB
	if cfg.IsDatabaseEnabled() {
		db, err = database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		if err := database.EnsureSchema(ctx, db); err != nil {
			return fmt.Errorf("failed to prepare schema: %w", err)
		}
		repos.leads = database.NewLeadRepository(db)
		repos.calculations = database.NewSolarCalculationRepository(db)
		repos.consultations = database.NewConsultationRepository(db)
		log.Info("using postgres storage for leads")
	}

	// 2. Adapters
	timeout := cfg.IntegrationTimeout
	emailer := mail.NewNotifier(cfg, timeout)
	referral := pushlap.NewClient(cfg.PushLapAPIKey, timeout)
	sheetsClient := sheets.NewClient(cfg.SheetsWebhookURL, timeout)
	automation := taskmagic.NewClient(cfg.TaskMagicWebhookURL, timeout)
	insights := googlesolar.NewClient(cfg.GoogleSolarAPIKey, timeout)
	username, password, orgID := cfg.GetOpenSolarCredentials()
	platform := opensolar.NewClient(username, password, orgID, timeout)

	recordStep := func(o usecase.StepOutcome) {
		middleware.RecordIntegrationStep(o.Step, string(o.Status))
	}
	runner := usecase.NewNotifications(emailer, referral, sheetsClient, automation, log, recordStep)

	// 3. Queue (optional)
	var rabbit *queue.RabbitMQ
	var publisher usecase.NotificationPublisher
	if cfg.IsQueueEnabled() {
		rabbit, err = queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Warn("rabbitmq unavailable, notifications will run inline", "error", err)
		} else {
			defer rabbit.Close()
			publisher = queue.NewProducer(rabbit.Ch)
			worker := queue.NewWorker(rabbit.Ch, runner, log)
			go func() {
				if err := worker.Start(ctx, queue.QueueName); err != nil {
					log.Error("queue worker stopped", "error", err)
				}
			}()
		}
	}
	dispatcher := usecase.NewDispatcher(runner, publisher, log)

	// 4. Use cases
	createLeadUC := usecase.NewCreateLeadUseCase(repos.leads, dispatcher, platform, log)
	createLeadUC.Observe = func(*entity.Lead) { middleware.RecordLeadCreated() }
	createLeadUC.ObserveStep = recordStep

	queries := usecase.NewLeadQueries(repos.leads, repos.calculations, repos.consultations)
	crm := usecase.NewCRM(repos.store.Users, repos.store.Projects, repos.store.Tasks,
		repos.store.Messages, repos.store.InstallationUpdates)

	// 5. Handlers
	limiter := middleware.NewRateLimiter(cfg.LeadRateLimitPerMin, log)
	go limiter.Cleanup(ctx, time.Minute)

	h := router.Handlers{
		Health: handlers.NewHealthHandler(pinger(db), connectionState(rabbit), map[string]handlers.Configurable{
			"email":         emailer,
			"pushlap":       referral,
			"google_sheets": sheetsClient,
			"taskmagic":     automation,
			"google_solar":  insights,
			"opensolar":     platform,
		}),
		Leads: handlers.NewLeadHandler(createLeadUC, queries, log),
		Forms: handlers.NewSubmissionHandler(
			usecase.NewCreateCalculationUseCase(repos.calculations, repos.leads, dispatcher, log),
			usecase.NewCreateConsultationUseCase(repos.consultations, repos.leads, dispatcher, log),
			queries,
			log),
		Insights: handlers.NewInsightsHandler(usecase.NewSolarInsightsUseCase(insights, log), log),
		OpenSolar: handlers.NewOpenSolarHandler(
			usecase.NewOpenSolarProjects(platform, log),
			usecase.NewCreateProspectUseCase(repos.leads, platform, log),
			log),
		Webhooks: handlers.NewWebhookHandler(usecase.NewHandleOpenSolarEventUseCase(automation, log), log),
		CRM: handlers.NewCRMHandler(crm,
			usecase.NewCompleteProjectUseCase(repos.store.Projects, repos.leads, referral, log), log),
		Admin: handlers.NewAdminHandler(queries,
			usecase.NewExportLeadUseCase(repos.leads, repos.calculations, sheetsClient, log), log),
		FormLimits: limiter,
	}

	// 6. Server
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(router.Options{CORSOrigins: cfg.CORSOrigins, Logger: log}, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// pinger and connectionState keep a nil pointer from becoming a non-nil
// interface in the health report.
func pinger(db *sql.DB) handlers.Pinger {
	if db == nil {
		return nil
	}
	return db
}

func connectionState(r *queue.RabbitMQ) handlers.ConnectionState {
	if r == nil {
		return nil
	}
	return r
}
