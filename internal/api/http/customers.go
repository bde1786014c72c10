package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
)

type registerCustomerRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

func (h *AgencyHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req registerCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.ID == "" || req.Name == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "id and name are required"})
		return
	}

	customer := &domain.Customer{
		ID:          req.ID,
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
	}
	if err := h.agencySvc.RegisterCustomer(r.Context(), customer); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

func (h *AgencyHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	customer, err := h.agencySvc.GetCustomer(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *AgencyHandler) ListCustomerRentals(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rentals, err := h.agencySvc.CustomerRentals(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.RentalTransaction{}
	}
	respondJSON(w, http.StatusOK, rentals)
}
