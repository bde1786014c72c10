package http

import (
	"encoding/json"
	"net/http"

	"carrental-backend/internal/domain"
)

type rentCarRequest struct {
	Registration string `json:"registration"`
	CustomerID   string `json:"customer_id"`
	Days         int32  `json:"days"`
}

func (h *AgencyHandler) RentCar(w http.ResponseWriter, r *http.Request) {
	var req rentCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Registration == "" || req.CustomerID == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "registration and customer_id are required"})
		return
	}

	rt, err := h.agencySvc.RentCar(r.Context(), req.Registration, req.CustomerID, req.Days)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rt)
}

func (h *AgencyHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.agencySvc.ListTransactions(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.RentalTransaction{}
	}
	respondJSON(w, http.StatusOK, rentals)
}
