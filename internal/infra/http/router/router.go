// Package router mounts every HTTP route on a chi mux.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/liv8solar/solar-leads/internal/infra/http/handlers"
	"github.com/liv8solar/solar-leads/internal/infra/http/middleware"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Leads      *handlers.LeadHandler
	Forms      *handlers.SubmissionHandler
	Insights   *handlers.InsightsHandler
	OpenSolar  *handlers.OpenSolarHandler
	Webhooks   *handlers.WebhookHandler
	CRM        *handlers.CRMHandler
	Admin      *handlers.AdminHandler
	FormLimits *middleware.RateLimiter
}

type Options struct {
	CORSOrigins []string
	Logger      *logger.Logger
}

// New builds the API router. FormLimits, when set, throttles the public
// form endpoints per client IP.
func New(opts Options, h Handlers) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Affiliate-Id", "Affiliate-Id", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if h.FormLimits != nil {
				r.Use(h.FormLimits.Handler)
			}
			r.Post("/leads", h.Leads.Create)
			r.Post("/solar-calculations", h.Forms.CreateCalculation)
			r.Post("/consultations", h.Forms.CreateConsultation)
		})

		r.Get("/leads", h.Leads.List)
		r.Get("/leads/{id}", h.Leads.Get)
		r.Patch("/leads/{id}", h.Leads.UpdateStatus)
		r.Patch("/consultations/{id}", h.Forms.UpdateConsultationStatus)

		r.Route("/solar-insights", func(r chi.Router) {
			r.Get("/status", h.Insights.Status)
			r.Post("/", h.Insights.ForAddress)
			r.Post("/bill-match", h.Insights.BillMatch)
		})

		r.Route("/opensolar", func(r chi.Router) {
			r.Get("/status", h.OpenSolar.Status)
			r.Get("/projects", h.OpenSolar.ListProjects)
			r.Get("/projects/{projectId}", h.OpenSolar.GetProject)
			r.Patch("/projects/{projectId}", h.OpenSolar.UpdateProject)
			r.Get("/projects/{projectId}/summary", h.OpenSolar.ProjectSummary)
			r.Get("/projects/{projectId}/systems", h.OpenSolar.ProjectSystems)
			r.Post("/prospects", h.OpenSolar.CreateProspect)
			r.Post("/webhooks", h.OpenSolar.CreateWebhook)
		})

		r.Post("/webhooks/opensolar", h.Webhooks.OpenSolar)

		r.Get("/users", h.CRM.ListUsers)
		r.Post("/users", h.CRM.CreateUser)
		r.Patch("/users/{id}", h.CRM.UpdateUser)

		r.Post("/projects", h.CRM.CreateProject)
		r.Get("/projects/client/{clientId}", h.CRM.ProjectsByClient)
		r.Get("/projects/rep/{repId}", h.CRM.ProjectsByRep)
		r.Patch("/projects/{id}", h.CRM.UpdateProject)
		r.Post("/projects/{id}/complete", h.CRM.CompleteProject)

		r.Post("/tasks", h.CRM.CreateTask)
		r.Get("/tasks/rep/{repId}", h.CRM.TasksByRep)
		r.Patch("/tasks/{id}", h.CRM.UpdateTask)

		r.Post("/installation-updates", h.CRM.CreateInstallationUpdate)
		r.Get("/installation-updates/project/{projectId}", h.CRM.InstallationUpdatesByProject)

		r.Post("/messages", h.CRM.CreateMessage)
		r.Get("/messages/project/{projectId}", h.CRM.MessagesByProject)

		r.Get("/admin/stats", h.Admin.Stats)
		r.Post("/admin/export-to-sheets", h.Admin.ExportToSheets)
	})

	return r
}
