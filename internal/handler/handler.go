package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/config"
	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/repository"
	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/schedule"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	coordinator   *schedule.Coordinator
	workflow      *schedule.Workflow
	translator    ut.Translator
	notifyChannel *amqp.Channel
	redisClient   *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, notifyCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	rule := domain.ComplianceRule{
		MinStart:         cfg.Compliance.MinStart,
		MaxEnd:           cfg.Compliance.MaxEnd,
		AllowedDurations: cfg.Compliance.AllowedDurations,
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		coordinator:   schedule.NewCoordinator(repo, rule),
		workflow:      schedule.NewWorkflow(repo),
		translator:    trans,
		notifyChannel: notifyCh,
		redisClient:   rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// Everything below requires a logged-in user.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/employees", h.GetAllEmployees)
		r.Get("/locations", h.GetAllLocations)

		r.Route("/locations/{locationID}", func(r chi.Router) {
			r.Use(h.location)

			r.Get("/schedule", h.GetSchedule)
			r.Get("/schedule/export", h.ExportSchedule)

			// Mutations are manager-only and serialized per location.
			r.Group(func(r chi.Router) {
				r.Use(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleAdmin}))
				r.Use(h.locationLock)

				r.Post("/shifts", h.CreateShift)
				r.Post("/shifts/swap", h.SwapShifts)
				r.Route("/shifts/{shiftID}", func(r chi.Router) {
					r.Use(h.shift)
					r.Patch("/window", h.UpdateShiftWindow)
					r.Patch("/status", h.UpdateShiftStatus)
					r.Post("/move", h.MoveShift)
					r.Delete("/", h.DeleteShift)
				})
			})
		})

		r.Route("/bulk-templates", func(r chi.Router) {
			r.Get("/", h.ListBulkTemplates)
			r.Group(func(r chi.Router) {
				r.Use(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleAdmin}))
				r.Post("/", h.SubmitBulkTemplate)
				r.Route("/{templateID}", func(r chi.Router) {
					r.Use(h.bulkTemplate)
					r.Get("/", h.GetBulkTemplate)
					r.Post("/approve", h.ApproveBulkTemplate)
					r.Post("/reject", h.RejectBulkTemplate)
				})
			})
		})
	})
}
