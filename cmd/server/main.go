package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"cleanouts/internal/api"
	"cleanouts/internal/auth"
	"cleanouts/internal/logger"
	"cleanouts/internal/repository"
	"cleanouts/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

// Submissions older than this are purged by the nightly job.
const retentionDays = 90

func main() {
	godotenv.Load()
	log := logger.Get(logger.InfoLevel)

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatalw("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalw("failed to open DB", "err", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalw("failed to connect to DB", "err", err)
	}

	apptRepo := repository.NewAppointmentRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	jobRepo := repository.NewJobRepository(db)
	authRepo := repository.NewAdminAuthRepository(db)

	sender := service.NewSenderService(log)
	apptSvc := service.NewAppointmentService(apptRepo, sender, log)
	quoteSvc := service.NewQuoteService(inquiryRepo, sender, log)
	contactSvc := service.NewContactService(inquiryRepo, sender, log)
	adminSvc := service.NewAdminService(adminRepo, apptRepo, inquiryRepo, sender, log)
	authSvc := service.NewAdminAuthService(authRepo)
	jobSvc := service.NewJobService(jobRepo, log)

	formHandler := api.NewUserFormHandler(contactSvc, quoteSvc, apptSvc)
	adminHandler := api.NewAdminHandler(adminSvc)
	adminAuthHandler := api.NewAdminAuthHandler(authSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/contact", formHandler.SubmitContact).Methods("POST")
	r.HandleFunc("/api/quote", formHandler.RequestQuote).Methods("POST")
	r.HandleFunc("/api/rates", formHandler.GetRates).Methods("GET")
	r.HandleFunc("/api/appointments/availability", formHandler.CheckAvailability).Methods("POST")
	r.HandleFunc("/api/appointments", formHandler.CreateAppointment).Methods("POST")
	r.HandleFunc("/api/appointments/{code}", formHandler.GetAppointment).Methods("GET")
	r.HandleFunc("/api/appointments/{code}", formHandler.CancelAppointment).Methods("DELETE")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/appointments", adminHandler.ListAppointments).Methods("GET")
	admin.HandleFunc("/appointments/{id}/status", adminHandler.UpdateAppointmentStatus).Methods("PUT")
	admin.HandleFunc("/appointments/{id}", adminHandler.DeleteAppointment).Methods("DELETE")
	admin.HandleFunc("/inquiries", adminHandler.ListInquiries).Methods("GET")
	admin.HandleFunc("/register", adminAuthHandler.CreateAdmin).Methods("POST")

	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", func() {
		if err := jobSvc.CompletePastAppointments(); err != nil {
			log.Errorw("completing past appointments failed", "err", err)
		}
		cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
		if err := jobSvc.PurgeOldSubmissions(cutoff); err != nil {
			log.Errorw("purging old submissions failed", "err", err)
		}
	}); err != nil {
		log.Fatalw("failed to register maintenance job", "err", err)
	}
	c.Start()
	defer c.Stop()

	allowedOrigin := os.Getenv("SITE_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{allowedOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infow("server running", "port", port)
	if err := http.ListenAndServe(":"+port, cors(r)); err != nil {
		log.Fatalw("server stopped", "err", err)
	}
}
