package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coderlevi/candidate-process/internal/config"
	"github.com/coderlevi/candidate-process/internal/infra/database"
	"github.com/coderlevi/candidate-process/internal/infra/http/handlers"
	"github.com/coderlevi/candidate-process/internal/infra/http/middleware"
	"github.com/coderlevi/candidate-process/internal/infra/mail"
	"github.com/coderlevi/candidate-process/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	leadRepo := database.NewLeadRepository(db)

	var mailer usecase.Mailer
	if cfg.SMTPConfigured() {
		mailer = mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	} else {
		log.Println("MAIL_HOST not set, outgoing email goes to the log")
		mailer = mail.LogSender{}
	}

	submitLeadUC := usecase.NewSubmitLeadUseCase(leadRepo, mailer, cfg.StaffContact)
	adminUC := usecase.NewLeadAdminUseCase(leadRepo)

	leadHandler := handlers.NewLeadHandler(submitLeadUC)
	adminHandler := handlers.NewAdminHandler(adminUC)
	healthHandler := handlers.NewHealthHandler(db, cfg.SMTPConfigured())

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", middleware.APIKeyHeader},
	}))

	r.Post("/leads", leadHandler.SubmitLead)

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKey(cfg.InternalKey))
		r.Get("/leads", adminHandler.ListLeads)
		r.Get("/leads/{id}", adminHandler.GetLead)
		r.Get("/leads/{id}/resume", adminHandler.DownloadResume)
		r.Put("/leads/{id}/resume", adminHandler.ReplaceResume)
		r.Put("/leads/{id}/state", adminHandler.UpdateState)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	log.Printf("lead intake API listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}
