package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"memberhub-backend/internal/domain"
	"memberhub-backend/internal/service"

	"github.com/gorilla/mux"
)

// MembershipHandler exposes the application lifecycle over HTTP
type MembershipHandler struct {
	svc service.MembershipService
}

func NewMembershipHandler(svc service.MembershipService) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

type applyRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company,omitempty"`
	Reason  *string `json:"reason,omitempty"`
}

func (h *MembershipHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Malformed request body")
		return
	}
	defer r.Body.Close()

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Name and email are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Email is not valid")
		return
	}

	app, err := h.svc.Apply(r.Context(), req.Name, req.Email, req.Company, req.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *MembershipHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.ListApplications(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if apps == nil {
		apps = []domain.MemberApplication{}
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *MembershipHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	status := domain.ApplicationStatus(vars["status"])

	app, err := h.svc.UpdateStatus(r.Context(), id, status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *MembershipHandler) CompleteRegistration(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var input domain.RegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Malformed request body")
		return
	}
	defer r.Body.Close()

	member, err := h.svc.CompleteRegistration(r.Context(), token, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}
