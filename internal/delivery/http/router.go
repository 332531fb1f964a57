package http

import (
	"net/http"

	"physiodesk/internal/delivery/http/handler"
	"physiodesk/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	patientHandler  *handler.PatientHandler
	sessionHandler  *handler.SessionHandler
	earningsHandler *handler.EarningsHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	sessionHandler *handler.SessionHandler,
	earningsHandler *handler.EarningsHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		patientHandler:  patientHandler,
		sessionHandler:  sessionHandler,
		earningsHandler: earningsHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/otp/request", r.authHandler.RequestOTP).Methods(http.MethodPost)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", r.authHandler.ForgotPassword).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", r.authHandler.ResetPassword).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/profile", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	// Patient routes (protected)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("", r.patientHandler.ListPatients).Methods(http.MethodGet)
	patients.HandleFunc("", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patients.HandleFunc("/active-sessions", r.patientHandler.ActivePatients).Methods(http.MethodPost)
	patients.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	patients.HandleFunc("/{id}/sessions/details", r.patientHandler.UpdateOpenSessions).Methods(http.MethodPut)
	patients.HandleFunc("/{id}/sessions/close", r.patientHandler.CloseOpenSessions).Methods(http.MethodPut)
	patients.HandleFunc("/{id}/sessions/last-active", r.patientHandler.LastActiveSession).Methods(http.MethodGet)

	// Session routes (protected)
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(r.authMiddleware.Authenticate)
	sessions.HandleFunc("", r.sessionHandler.ListSessions).Methods(http.MethodGet)
	sessions.HandleFunc("", r.sessionHandler.CreateSession).Methods(http.MethodPost)
	sessions.HandleFunc("/bulk", r.sessionHandler.CreateSessionsBulk).Methods(http.MethodPost)
	sessions.HandleFunc("/today", r.sessionHandler.GetTodaySessions).Methods(http.MethodGet)
	sessions.HandleFunc("/upcoming", r.sessionHandler.GetUpcomingSessions).Methods(http.MethodGet)
	sessions.HandleFunc("/past", r.sessionHandler.GetPastSessions).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", r.sessionHandler.UpdateSession).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}", r.sessionHandler.DeleteSession).Methods(http.MethodDelete)

	// Earnings routes (protected)
	earnings := api.PathPrefix("/earnings").Subrouter()
	earnings.Use(r.authMiddleware.Authenticate)
	earnings.HandleFunc("/monthly", r.earningsHandler.GetMonthlySummary).Methods(http.MethodGet)
	earnings.HandleFunc("/monthly/{year}/{month}", r.earningsHandler.GetMonthlyDetail).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
