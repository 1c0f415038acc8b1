package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cleanouts/internal/entities"
	apperrors "cleanouts/internal/errors"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactService struct {
	submitted []entities.ContactRequest
	err       error
}

func (f *fakeContactService) SubmitContact(req entities.ContactRequest) error {
	if f.err != nil {
		return f.err
	}
	f.submitted = append(f.submitted, req)
	return nil
}

type fakeQuoteService struct {
	resp  *entities.QuoteResponse
	rates entities.RatesResponse
	err   error
}

func (f *fakeQuoteService) SubmitQuote(req entities.QuoteFormRequest) (*entities.QuoteResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeQuoteService) Rates() entities.RatesResponse { return f.rates }

type fakeAppointmentService struct {
	available  bool
	message    string
	created    *entities.AppointmentResponse
	createErr  error
	found      *entities.AppointmentResponse
	foundErr   error
	cancelErr  error
	cancelCode string
}

func (f *fakeAppointmentService) CheckAvailability(date, timeOfDay string) *entities.AvailabilityResponse {
	return &entities.AvailabilityResponse{
		Available:     f.available,
		RequestedDate: date,
		RequestedTime: timeOfDay,
		Message:       f.message,
	}
}

func (f *fakeAppointmentService) CreateAppointment(req *entities.AppointmentRequest) (*entities.AppointmentResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeAppointmentService) GetAppointmentByCode(code, email string) (*entities.AppointmentResponse, error) {
	if f.foundErr != nil {
		return nil, f.foundErr
	}
	return f.found, nil
}

func (f *fakeAppointmentService) CancelAppointment(code string) error {
	f.cancelCode = code
	return f.cancelErr
}

func newTestRouter(contact ContactService, quotes QuoteService, appointments AppointmentService) *mux.Router {
	h := NewUserFormHandler(contact, quotes, appointments)
	r := mux.NewRouter()
	r.HandleFunc("/api/contact", h.SubmitContact).Methods("POST")
	r.HandleFunc("/api/quote", h.RequestQuote).Methods("POST")
	r.HandleFunc("/api/rates", h.GetRates).Methods("GET")
	r.HandleFunc("/api/appointments/availability", h.CheckAvailability).Methods("POST")
	r.HandleFunc("/api/appointments", h.CreateAppointment).Methods("POST")
	r.HandleFunc("/api/appointments/{code}", h.GetAppointment).Methods("GET")
	r.HandleFunc("/api/appointments/{code}", h.CancelAppointment).Methods("DELETE")
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContact_MissingFields(t *testing.T) {
	contact := &fakeContactService{}
	r := newTestRouter(contact, &fakeQuoteService{}, &fakeAppointmentService{})

	w := postJSON(t, r, "/api/contact", ContactFormRequest{Name: "  ", Email: "a@b.co", Message: ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please complete all fields.")
	assert.Empty(t, contact.submitted)
}

func TestSubmitContact_OK(t *testing.T) {
	contact := &fakeContactService{}
	r := newTestRouter(contact, &fakeQuoteService{}, &fakeAppointmentService{})

	w := postJSON(t, r, "/api/contact", ContactFormRequest{
		Name: "Lee Park", Email: "lee@example.com", Phone: "5551234567", Message: "Hi there",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thanks for reaching out")
	require.Len(t, contact.submitted, 1)
	assert.Equal(t, "Lee Park", contact.submitted[0].Name)
}

func TestRequestQuote_RejectsNonPositiveSize(t *testing.T) {
	r := newTestRouter(&fakeContactService{}, &fakeQuoteService{}, &fakeAppointmentService{})

	for _, size := range []float64{0, -10} {
		w := postJSON(t, r, "/api/quote", QuoteFormRequest{
			Name: "Sam", Email: "sam@example.com", PropertyType: "residential", SquareFootage: size,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestRequestQuote_OK(t *testing.T) {
	quotes := &fakeQuoteService{resp: &entities.QuoteResponse{
		Amount:   3000,
		Estimate: "$3,000.00",
		Details:  []string{"Final pricing may vary after an on-site assessment."},
	}}
	r := newTestRouter(&fakeContactService{}, quotes, &fakeAppointmentService{})

	w := postJSON(t, r, "/api/quote", QuoteFormRequest{
		Name: "Sam", Email: "sam@example.com", PropertyType: "commercial", SquareFootage: 1000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp entities.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "$3,000.00", resp.Estimate)
	assert.Len(t, resp.Details, 1)
}

func TestCheckAvailability(t *testing.T) {
	appointments := &fakeAppointmentService{available: false, message: "pick another time"}
	r := newTestRouter(&fakeContactService{}, &fakeQuoteService{}, appointments)

	w := postJSON(t, r, "/api/appointments/availability", AvailabilityRequest{Date: "2024-06-08", Time: "10:00"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp entities.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Equal(t, "pick another time", resp.Message)

	// Blank fields are a caller validation error, not a policy verdict.
	w = postJSON(t, r, "/api/appointments/availability", AvailabilityRequest{Date: "", Time: ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAppointment_ConflictWhenUnavailable(t *testing.T) {
	appointments := &fakeAppointmentService{available: false, message: "pick another time"}
	r := newTestRouter(&fakeContactService{}, &fakeQuoteService{}, appointments)

	w := postJSON(t, r, "/api/appointments", CreateAppointmentRequest{
		FullName: "Dana", Email: "dana@example.com", Phone: "5551234567",
		Address: "18 Maple St", Date: "2024-06-08", Time: "10:00",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "pick another time")
}

func TestCreateAppointment_OK(t *testing.T) {
	appointments := &fakeAppointmentService{
		available: true,
		created:   &entities.AppointmentResponse{Code: "0A1B2C3D"},
	}
	r := newTestRouter(&fakeContactService{}, &fakeQuoteService{}, appointments)

	w := postJSON(t, r, "/api/appointments", CreateAppointmentRequest{
		FullName: "Dana", Email: "dana@example.com", Phone: "5551234567",
		Address: "18 Maple St", PropertyType: "residential", Date: "2024-06-10", Time: "09:00",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp CreateAppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "0A1B2C3D", resp.AppointmentCode)
}

func TestCancelAppointment_MapsServiceError(t *testing.T) {
	appointments := &fakeAppointmentService{
		cancelErr: apperrors.ErrConflict("appointments can only be canceled more than 12 hours before the scheduled time"),
	}
	r := newTestRouter(&fakeContactService{}, &fakeQuoteService{}, appointments)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/appointments/0A1B2C3D", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "0A1B2C3D", appointments.cancelCode)

	appointments.cancelErr = errors.New("db down")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/appointments/0A1B2C3D", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetAppointment(t *testing.T) {
	appointments := &fakeAppointmentService{found: &entities.AppointmentResponse{Code: "0A1B2C3D", UserName: "Dana"}}
	r := newTestRouter(&fakeContactService{}, &fakeQuoteService{}, appointments)

	// Email is required.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/appointments/0A1B2C3D", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/appointments/0A1B2C3D?email=dana@example.com", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "Dana"))
}

func TestGetRates(t *testing.T) {
	quotes := &fakeQuoteService{rates: entities.RatesResponse{
		BaseRatePerSquareFoot: 2.5,
		Multipliers:           []entities.RateLine{{PropertyType: "residential", Multiplier: 1.0}},
	}}
	r := newTestRouter(&fakeContactService{}, quotes, &fakeAppointmentService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rates", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "base_rate_per_sq_ft")
}
