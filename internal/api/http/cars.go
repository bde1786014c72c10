package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
)

type registerCarRequest struct {
	Registration   string `json:"registration"`
	Model          string `json:"model"`
	DailyRateCents int32  `json:"daily_rate_cents"`
	PricingClass   string `json:"pricing_class"`
}

func (h *AgencyHandler) RegisterCar(w http.ResponseWriter, r *http.Request) {
	var req registerCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Registration == "" || req.Model == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "registration and model are required"})
		return
	}
	if req.DailyRateCents < 0 {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "daily rate must be non-negative"})
		return
	}

	pricingClass := domain.PricingClass(req.PricingClass)
	switch pricingClass {
	case "", domain.PricingClassStandard, domain.PricingClassLuxury:
	default:
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown pricing class"})
		return
	}

	car := &domain.Car{
		Registration:   req.Registration,
		Model:          req.Model,
		DailyRateCents: req.DailyRateCents,
		PricingClass:   pricingClass,
	}
	if err := h.agencySvc.RegisterCar(r.Context(), car); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, car)
}

func (h *AgencyHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	registration := mux.Vars(r)["registration"]
	car, err := h.agencySvc.GetCar(r.Context(), registration)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, car)
}

func (h *AgencyHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	// Only the available fleet is exposed as a listing.
	cars, err := h.agencySvc.ListAvailableCars(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if cars == nil {
		cars = []domain.Car{}
	}
	respondJSON(w, http.StatusOK, cars)
}

func (h *AgencyHandler) ReturnCar(w http.ResponseWriter, r *http.Request) {
	registration := mux.Vars(r)["registration"]
	rt, err := h.agencySvc.ReturnCar(r.Context(), registration)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rt)
}
