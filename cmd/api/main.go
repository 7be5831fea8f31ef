package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/altamirahr/hris-service/internal/config"
	"github.com/altamirahr/hris-service/internal/handler"
	"github.com/altamirahr/hris-service/internal/integrations/holidays"
	"github.com/altamirahr/hris-service/internal/middleware"
	"github.com/altamirahr/hris-service/internal/repository"
	"github.com/altamirahr/hris-service/internal/service"
	"github.com/altamirahr/hris-service/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	mailer := email.NewSender(cfg, logger)
	holidayClient := holidays.NewClient(cfg, logger)
	svc := service.NewService(repo, logger, cfg, mailer, holidayClient)
	h := handler.NewHandler(svc, logger)

	// Nightly backup schedule
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.BackupCron, svc.ScheduledBackup); err != nil {
		logger.Fatalf("Invalid backup cron expression: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")

	// Protected routes
	api := r.PathPrefix("/").Subrouter()
	api.Use(middleware.AuthMiddleware(cfg))
	api.Use(middleware.ActivityMiddleware(svc))

	api.HandleFunc("/employees", h.ListEmployees).Methods("GET")
	api.HandleFunc("/employees", h.CreateEmployee).Methods("POST")
	api.HandleFunc("/employees/{id}", h.GetEmployee).Methods("GET")
	api.HandleFunc("/employees/{id}", h.UpdateEmployee).Methods("PUT")
	api.HandleFunc("/employees/{id}", h.DeleteEmployee).Methods("DELETE")

	api.HandleFunc("/loans", h.ListLoans).Methods("GET")
	api.HandleFunc("/loans", h.CreateLoan).Methods("POST")
	api.HandleFunc("/loans/{id}", h.GetLoan).Methods("GET")
	api.HandleFunc("/loans/{id}", h.UpdateLoan).Methods("PUT")
	api.HandleFunc("/loans/{id}", h.DeleteLoan).Methods("DELETE")
	api.HandleFunc("/loans/{id}/decision", h.DecideLoan).Methods("POST")
	api.HandleFunc("/loans/{id}/installments", h.ListInstallments).Methods("GET")
	api.HandleFunc("/loans/{id}/payments", h.ListPayments).Methods("GET")
	api.HandleFunc("/loans/{id}/payments", h.ApplyPayment).Methods("POST")

	api.HandleFunc("/benefits", h.ListBenefitRequests).Methods("GET")
	api.HandleFunc("/benefits", h.CreateBenefitRequest).Methods("POST")
	api.HandleFunc("/benefits/{id}", h.GetBenefitRequest).Methods("GET")
	api.HandleFunc("/benefits/{id}", h.UpdateBenefitRequest).Methods("PUT")
	api.HandleFunc("/benefits/{id}", h.DeleteBenefitRequest).Methods("DELETE")
	api.HandleFunc("/benefits/{id}/decision", h.DecideBenefitRequest).Methods("POST")

	api.HandleFunc("/bookings", h.ListBookings).Methods("GET")
	api.HandleFunc("/bookings", h.CreateBooking).Methods("POST")
	api.HandleFunc("/bookings/{id}", h.GetBooking).Methods("GET")
	api.HandleFunc("/bookings/{id}", h.UpdateBooking).Methods("PUT")
	api.HandleFunc("/bookings/{id}", h.DeleteBooking).Methods("DELETE")
	api.HandleFunc("/bookings/{id}/decision", h.DecideBooking).Methods("POST")

	api.HandleFunc("/tickets", h.ListTickets).Methods("GET")
	api.HandleFunc("/tickets", h.CreateTicket).Methods("POST")
	api.HandleFunc("/tickets/{id}", h.GetTicket).Methods("GET")
	api.HandleFunc("/tickets/{id}", h.UpdateTicket).Methods("PUT")
	api.HandleFunc("/tickets/{id}", h.DeleteTicket).Methods("DELETE")

	api.HandleFunc("/backups", h.ListBackups).Methods("GET")
	api.HandleFunc("/backups", h.CreateBackup).Methods("POST")
	api.HandleFunc("/backups/{id}", h.DeleteBackup).Methods("DELETE")

	api.HandleFunc("/activities", h.ListActivities).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
