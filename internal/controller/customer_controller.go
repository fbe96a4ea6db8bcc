package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stitchlink/stitchlink-backend/internal/auth"
	appErrors "github.com/stitchlink/stitchlink-backend/internal/errors"
	"github.com/stitchlink/stitchlink-backend/internal/model"
	"github.com/stitchlink/stitchlink-backend/internal/service"
)

type CustomerController struct {
	Service *service.CustomerService
}

// writeError maps service errors to status codes: validation failures carry
// their per-field messages, not-found sentinels become 404s.
func writeError(w http.ResponseWriter, err error) {
	var ve *appErrors.ValidationError
	if errors.As(err, &ve) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
		return
	}

	var customerNotFound *appErrors.ErrCustomerNotFound
	var measurementNotFound *appErrors.ErrMeasurementNotFound
	if errors.As(err, &customerNotFound) || errors.As(err, &measurementNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func principal(w http.ResponseWriter, r *http.Request) (*model.Principal, bool) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return nil, false
	}
	return p, true
}

func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var body struct {
		service.ContactInput
		Measurement model.Measurement `json:"measurement"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	customer, err := c.Service.AddCustomer(p.ID, body.ContactInput, body.Measurement)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(customer)
}

func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	customers, err := c.Service.ListCustomers(p.ID, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"data": customers})
}

func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	customer, err := c.Service.GetCustomer(p.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	// Detail views render each measurement as grouped cards; empty groups
	// are already dropped by the projection.
	cards := map[string][]service.GroupCard{}
	for _, m := range customer.Measurements {
		cards[m.ID] = service.GroupCards(m)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"data":  customer,
		"cards": cards,
	})
}

func (c *CustomerController) AddMeasurement(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var body model.Measurement
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	m, err := c.Service.AddMeasurement(p.ID, chi.URLParam(r, "id"), body)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

func (c *CustomerController) UpdateMeasurement(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var body model.Measurement
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	m, err := c.Service.UpdateMeasurement(p.ID, chi.URLParam(r, "id"), chi.URLParam(r, "measurementId"), body)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}
