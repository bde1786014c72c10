package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/service"
)

// AgencyHandler exposes the rental agency operations over JSON/HTTP.
type AgencyHandler struct {
	agencySvc service.AgencyService
}

func NewAgencyHandler(agencySvc service.AgencyService) *AgencyHandler {
	return &AgencyHandler{agencySvc: agencySvc}
}

// RegisterRoutes attaches all agency routes to the router.
func RegisterRoutes(r *mux.Router, h *AgencyHandler) {
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/cars", h.RegisterCar).Methods(http.MethodPost)
	api.HandleFunc("/cars", h.ListCars).Methods(http.MethodGet)
	api.HandleFunc("/cars/{registration}", h.GetCar).Methods(http.MethodGet)
	api.HandleFunc("/cars/{registration}/return", h.ReturnCar).Methods(http.MethodPost)

	api.HandleFunc("/customers", h.RegisterCustomer).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id}", h.GetCustomer).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}/rentals", h.ListCustomerRentals).Methods(http.MethodGet)

	api.HandleFunc("/rentals", h.RentCar).Methods(http.MethodPost)
	api.HandleFunc("/rentals", h.ListRentals).Methods(http.MethodGet)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusForError(err), errorResponse{Error: err.Error()})
}

// statusForError maps the domain error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCarNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrRentalNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCarUnavailable),
		errors.Is(err, domain.ErrNoOpenRental),
		errors.Is(err, domain.ErrDuplicateCar),
		errors.Is(err, domain.ErrDuplicateCustomer):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidDays):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
