package http

import (
	"memberhub-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires the public and admin routes. Admin routes share the
// secret-header middleware on their own subrouter.
func NewRouter(membershipSvc service.MembershipService, dashboardSvc service.DashboardService, adminSecret string) *mux.Router {
	membership := NewMembershipHandler(membershipSvc)
	dashboard := NewDashboardHandler(dashboardSvc)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public endpoints
	api.HandleFunc("/members/apply", membership.Apply).Methods("POST")
	api.HandleFunc("/members/register/{token}", membership.CompleteRegistration).Methods("POST")

	// Admin endpoints
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(AdminOnly(adminSecret))
	admin.HandleFunc("/applications", membership.List).Methods("GET")
	admin.HandleFunc("/applications/{id}/{status}", membership.UpdateStatus).Methods("PATCH")
	admin.HandleFunc("/dashboard", dashboard.GetStats).Methods("GET")

	return router
}
