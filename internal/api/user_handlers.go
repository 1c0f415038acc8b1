package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"

	"cleanouts/internal/entities"
	apperrors "cleanouts/internal/errors"

	"github.com/gorilla/mux"
)

const msgMissingFields = "Please complete all fields."

type ContactService interface {
	SubmitContact(req entities.ContactRequest) error
}

type QuoteService interface {
	SubmitQuote(req entities.QuoteFormRequest) (*entities.QuoteResponse, error)
	Rates() entities.RatesResponse
}

type AppointmentService interface {
	CheckAvailability(date, timeOfDay string) *entities.AvailabilityResponse
	CreateAppointment(req *entities.AppointmentRequest) (*entities.AppointmentResponse, error)
	GetAppointmentByCode(code, email string) (*entities.AppointmentResponse, error)
	CancelAppointment(code string) error
}

type UserFormHandler struct {
	Contact      ContactService
	Quotes       QuoteService
	Appointments AppointmentService
}

func NewUserFormHandler(contact ContactService, quotes QuoteService, appointments AppointmentService) *UserFormHandler {
	return &UserFormHandler{Contact: contact, Quotes: quotes, Appointments: appointments}
}

func (h *UserFormHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		http.Error(w, msgMissingFields, http.StatusBadRequest)
		return
	}

	err := h.Contact.SubmitContact(entities.ContactRequest{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(req.Phone),
		Message: message,
	})
	if err != nil {
		http.Error(w, "Could not submit your message", http.StatusInternalServerError)
		return
	}

	writeJSON(w, MessageResponse{Message: "Thanks for reaching out! We'll get back to you shortly."})
}

func (h *UserFormHandler) RequestQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	propertyType := strings.TrimSpace(req.PropertyType)
	size := req.SquareFootage
	if name == "" || email == "" || propertyType == "" ||
		size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		http.Error(w, msgMissingFields, http.StatusBadRequest)
		return
	}

	resp, err := h.Quotes.SubmitQuote(entities.QuoteFormRequest{
		Name:          name,
		Email:         email,
		PropertyType:  propertyType,
		SquareFootage: size,
		HasHazard:     req.HasHazard,
		HasLawn:       req.HasLawn,
	})
	if err != nil {
		http.Error(w, "Could not prepare your quote", http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp)
}

func (h *UserFormHandler) GetRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Quotes.Rates())
}

func (h *UserFormHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		http.Error(w, msgMissingFields, http.StatusBadRequest)
		return
	}

	writeJSON(w, h.Appointments.CheckAvailability(req.Date, req.Time))
}

func (h *UserFormHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Address) == "" ||
		strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		http.Error(w, msgMissingFields, http.StatusBadRequest)
		return
	}

	availability := h.Appointments.CheckAvailability(req.Date, req.Time)
	if !availability.Available {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(availability)
		return
	}

	resp, err := h.Appointments.CreateAppointment(&entities.AppointmentRequest{
		UserName:     strings.TrimSpace(req.FullName),
		UserEmail:    strings.TrimSpace(req.Email),
		UserPhone:    strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		PropertyType: strings.TrimSpace(req.PropertyType),
		Date:         req.Date,
		Time:         req.Time,
		Notes:        strings.TrimSpace(req.Notes),
	})
	if err != nil {
		writeServiceError(w, err, "Could not schedule your appointment")
		return
	}

	writeJSON(w, CreateAppointmentResponse{
		AppointmentCode: resp.Code,
		Message:         "Appointment request received! We'll confirm shortly.",
	})
}

func (h *UserFormHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		http.Error(w, msgMissingFields, http.StatusBadRequest)
		return
	}

	res, err := h.Appointments.GetAppointmentByCode(code, email)
	if err != nil {
		http.Error(w, "Appointment not found", http.StatusNotFound)
		return
	}
	writeJSON(w, res)
}

func (h *UserFormHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if err := h.Appointments.CancelAppointment(code); err != nil {
		writeServiceError(w, err, "Could not cancel appointment")
		return
	}
	writeJSON(w, MessageResponse{Message: "Appointment canceled"})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps service-layer HTTPErrors onto their status,
// hiding everything else behind a generic message.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		http.Error(w, httpErr.Message, httpErr.Code)
		return
	}
	http.Error(w, fallback, http.StatusInternalServerError)
}
