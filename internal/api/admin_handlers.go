package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cleanouts/internal/db"
	"cleanouts/internal/entities"

	"github.com/gorilla/mux"
)

type AdminService interface {
	ListAppointments(date, status string) (*entities.AppointmentsList, error)
	ListInquiries(kind string) ([]db.Inquiry, error)
	UpdateAppointmentStatus(id int, status string) error
	DeleteAppointment(id int) error
}

type AdminHandler struct {
	Service AdminService
}

func NewAdminHandler(svc AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	status := r.URL.Query().Get("status")
	appointments, err := h.Service.ListAppointments(date, status)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, appointments)
}

func (h *AdminHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	inquiries, err := h.Service.ListInquiries(kind)
	if err != nil {
		writeServiceError(w, err, "Database error")
		return
	}
	writeJSON(w, inquiries)
}

func (h *AdminHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateAppointmentStatus(id, req.Status); err != nil {
		writeServiceError(w, err, "Could not update appointment")
		return
	}
	writeJSON(w, MessageResponse{Message: "Appointment updated"})
}

func (h *AdminHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteAppointment(id); err != nil {
		http.Error(w, "Could not delete appointment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, MessageResponse{Message: "Appointment deleted"})
}
