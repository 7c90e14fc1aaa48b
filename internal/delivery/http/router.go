package http

import (
	"net/http"

	"hospital-operations-api/internal/delivery/http/handler"
	"hospital-operations-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	appointmentHandler  *handler.AppointmentHandler
	billingHandler      *handler.BillingHandler
	notificationHandler *handler.NotificationHandler
	doctorHandler       *handler.DoctorHandler
	patientHandler      *handler.PatientHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	billingHandler *handler.BillingHandler,
	notificationHandler *handler.NotificationHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		appointmentHandler:  appointmentHandler,
		billingHandler:      billingHandler,
		notificationHandler: notificationHandler,
		doctorHandler:       doctorHandler,
		patientHandler:      patientHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor directory (protected, any role)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	doctors.HandleFunc("/departments", r.doctorHandler.GetDepartments).Methods(http.MethodGet)
	doctors.HandleFunc("/department/{department}", r.doctorHandler.GetDoctorsByDepartment).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Appointment routes (protected)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("/available-slots/{doctorId}", r.appointmentHandler.GetAvailableSlots).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	appointments.HandleFunc("/my-appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/doctor/my-appointments", r.appointmentHandler.GetDoctorAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/confirm", r.appointmentHandler.ConfirmAppointment).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPatch)

	// Appointment routes (front desk)
	appointmentsStaff := api.PathPrefix("/appointments").Subrouter()
	appointmentsStaff.Use(r.authMiddleware.Authenticate)
	appointmentsStaff.Use(middleware.RequireAdminOrStaff)
	appointmentsStaff.HandleFunc("", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)

	// Appointment routes (admin)
	appointmentsAdmin := api.PathPrefix("/appointments").Subrouter()
	appointmentsAdmin.Use(r.authMiddleware.Authenticate)
	appointmentsAdmin.Use(middleware.RequireAdmin)
	appointmentsAdmin.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	appointmentsAdmin.HandleFunc("/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Billing routes (protected)
	bills := api.PathPrefix("/bills").Subrouter()
	bills.Use(r.authMiddleware.Authenticate)
	bills.HandleFunc("", r.billingHandler.CreateBill).Methods(http.MethodPost)
	bills.HandleFunc("/my-bills", r.billingHandler.GetMyBills).Methods(http.MethodGet)
	bills.HandleFunc("/{id}", r.billingHandler.GetBill).Methods(http.MethodGet)

	// Billing routes (front desk)
	billsStaff := api.PathPrefix("/bills").Subrouter()
	billsStaff.Use(r.authMiddleware.Authenticate)
	billsStaff.Use(middleware.RequireAdminOrStaff)
	billsStaff.HandleFunc("", r.billingHandler.GetAllBills).Methods(http.MethodGet)
	billsStaff.HandleFunc("/patient/{patientId}", r.billingHandler.GetBillsByPatient).Methods(http.MethodGet)
	billsStaff.HandleFunc("/{id}/payment", r.billingHandler.UpdatePayment).Methods(http.MethodPatch)

	// Notification routes (protected)
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(r.authMiddleware.Authenticate)
	notifications.HandleFunc("", r.notificationHandler.GetMyNotifications).Methods(http.MethodGet)
	notifications.HandleFunc("/{id}/read", r.notificationHandler.MarkRead).Methods(http.MethodPatch)

	// Patient self-service (protected)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("/me", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	patients.HandleFunc("/me", r.patientHandler.UpdateMyProfile).Methods(http.MethodPut)

	// Patient directory (front desk)
	patientsStaff := api.PathPrefix("/patients").Subrouter()
	patientsStaff.Use(r.authMiddleware.Authenticate)
	patientsStaff.Use(middleware.RequireAdminOrStaff)
	patientsStaff.HandleFunc("", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	patientsStaff.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Doctor management (admin)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
