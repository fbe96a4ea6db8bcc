package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/stitchlink/stitchlink-backend/internal/auth"
	"github.com/stitchlink/stitchlink-backend/internal/controller"
	appErrors "github.com/stitchlink/stitchlink-backend/internal/errors"
	"github.com/stitchlink/stitchlink-backend/internal/model"
	"github.com/stitchlink/stitchlink-backend/internal/service"
)

// --- Mock Repository ---

type MockCustomerRepo struct {
	customers []model.Customer
}

func (m *MockCustomerRepo) CreateCustomer(c *model.Customer, first *model.Measurement) error {
	cp := *c
	cp.Measurements = []model.Measurement{*first}
	m.customers = append(m.customers, cp)
	return nil
}

func (m *MockCustomerRepo) GetCustomer(userID, id string) (*model.Customer, error) {
	for i := range m.customers {
		if m.customers[i].ID == id && m.customers[i].UserID == userID {
			return &m.customers[i], nil
		}
	}
	return nil, appErrors.NewCustomerNotFound(id)
}

func (m *MockCustomerRepo) ListCustomers(userID string) ([]model.Customer, error) {
	out := []model.Customer{}
	for _, c := range m.customers {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockCustomerRepo) AddMeasurement(userID, customerID string, mm *model.Measurement) error {
	for i := range m.customers {
		if m.customers[i].ID == customerID && m.customers[i].UserID == userID {
			m.customers[i].Measurements = append(m.customers[i].Measurements, *mm)
			return nil
		}
	}
	return appErrors.NewCustomerNotFound(customerID)
}

func (m *MockCustomerRepo) UpdateMeasurement(userID string, mm *model.Measurement) error {
	for i := range m.customers {
		if m.customers[i].ID != mm.CustomerID || m.customers[i].UserID != userID {
			continue
		}
		for j := range m.customers[i].Measurements {
			if m.customers[i].Measurements[j].ID == mm.ID {
				m.customers[i].Measurements[j] = *mm
				return nil
			}
		}
		return appErrors.NewMeasurementNotFound(mm.ID)
	}
	return appErrors.NewCustomerNotFound(mm.CustomerID)
}

// --- Helpers ---

func testRouter(repo *MockCustomerRepo) *chi.Mux {
	svc := &service.CustomerService{Repo: repo}
	customers := &controller.CustomerController{Service: svc}
	orders := &controller.OrderController{Service: svc}

	r := chi.NewRouter()
	r.Post("/api/customers", customers.CreateCustomer)
	r.Get("/api/customers", customers.ListCustomers)
	r.Get("/api/customers/{id}", customers.GetCustomer)
	r.Post("/api/customers/{id}/measurements", customers.AddMeasurement)
	r.Put("/api/customers/{id}/measurements/{measurementId}", customers.UpdateMeasurement)
	r.Get("/api/orders", orders.ListOrders)
	return r
}

func authed(req *http.Request) *http.Request {
	p := &model.Principal{ID: "user-1", Email: "owner@example.com", Name: "Shop Owner"}
	return req.WithContext(auth.WithPrincipal(req.Context(), p))
}

func createBody() []byte {
	b, _ := json.Marshal(map[string]any{
		"name":       "Jane Doe",
		"email":      "jane.doe@example.com",
		"phone":      "202-555-0114",
		"nic":        "199012345678",
		"job_number": "JOB-014",
		"measurement": map[string]any{
			"chest": 36,
		},
	})
	return b
}

// --- Tests ---

func TestCreateCustomer(t *testing.T) {
	repo := &MockCustomerRepo{}
	router := testRouter(repo)

	req := authed(httptest.NewRequest("POST", "/api/customers", bytes.NewReader(createBody())))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created model.Customer
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Name != "Jane Doe" {
		t.Errorf("expected Jane Doe, got %q", created.Name)
	}
	if len(created.Measurements) != 1 {
		t.Fatalf("expected one measurement, got %d", len(created.Measurements))
	}
	if created.Measurements[0].Chest == nil || *created.Measurements[0].Chest != 36 {
		t.Error("chest=36 missing from created measurement")
	}
	if created.Measurements[0].PaymentStatus != model.PaymentUnpaid {
		t.Errorf("expected default Unpaid, got %s", created.Measurements[0].PaymentStatus)
	}
	if len(repo.customers) != 1 {
		t.Errorf("expected one stored customer, got %d", len(repo.customers))
	}
}

func TestCreateCustomerValidationError(t *testing.T) {
	router := testRouter(&MockCustomerRepo{})

	b, _ := json.Marshal(map[string]any{"name": "J"})
	req := authed(httptest.NewRequest("POST", "/api/customers", bytes.NewReader(b)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var res struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, ok := res.Fields["name"]; !ok {
		t.Errorf("expected a name field error, got %v", res.Fields)
	}
}

func TestCreateCustomerInvalidBody(t *testing.T) {
	router := testRouter(&MockCustomerRepo{})

	req := authed(httptest.NewRequest("POST", "/api/customers", strings.NewReader("{nope")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestMissingPrincipalIsRejected(t *testing.T) {
	router := testRouter(&MockCustomerRepo{})

	req := httptest.NewRequest("GET", "/api/customers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAddMeasurementUnknownCustomerIs404(t *testing.T) {
	router := testRouter(&MockCustomerRepo{})

	b, _ := json.Marshal(map[string]any{"chest": 40})
	req := authed(httptest.NewRequest("POST", "/api/customers/ghost/measurements", bytes.NewReader(b)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetCustomerDetailCards(t *testing.T) {
	repo := &MockCustomerRepo{}
	router := testRouter(repo)

	// Create Jane Doe with chest=36 only.
	req := authed(httptest.NewRequest("POST", "/api/customers", bytes.NewReader(createBody())))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %d", w.Code)
	}
	customerID := repo.customers[0].ID
	measurementID := repo.customers[0].Measurements[0].ID

	req = authed(httptest.NewRequest("GET", "/api/customers/"+customerID, nil))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res struct {
		Cards map[string][]service.GroupCard `json:"cards"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	cards := res.Cards[measurementID]
	if len(cards) != 1 {
		t.Fatalf("expected exactly one group card, got %d", len(cards))
	}
	if cards[0].Title != model.GroupCore {
		t.Errorf("expected the Core card, got %s", cards[0].Title)
	}
	if len(cards[0].Fields) != 1 || cards[0].Fields[0].Label != "Chest" {
		t.Errorf("expected Chest only, got %+v", cards[0].Fields)
	}
}

func TestListOrdersFilter(t *testing.T) {
	repo := &MockCustomerRepo{}
	router := testRouter(repo)

	for _, name := range []string{"Eleanor Vance", "Marcus Thorne", "Isabelle Rossi"} {
		b, _ := json.Marshal(map[string]any{
			"name":       name,
			"email":      "x@example.com",
			"phone":      "202-555-0100",
			"nic":        "199012345678",
			"job_number": "JOB-00X",
			"measurement": map[string]any{
				"payment_status": map[string]string{
					"Eleanor Vance":  "Unpaid",
					"Marcus Thorne":  "Paid",
					"Isabelle Rossi": "Partial",
				}[name],
			},
		})
		req := authed(httptest.NewRequest("POST", "/api/customers", bytes.NewReader(b)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("setup create failed for %s: %d", name, w.Code)
		}
	}

	req := authed(httptest.NewRequest("GET", "/api/orders?payment_status=Paid&q=Thorne", nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res struct {
		Data []model.Order `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(res.Data) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(res.Data))
	}
	if res.Data[0].CustomerName != "Marcus Thorne" {
		t.Errorf("expected Marcus Thorne, got %s", res.Data[0].CustomerName)
	}

	// Same tab, a name that is not Paid: zero rows.
	req = authed(httptest.NewRequest("GET", "/api/orders?payment_status=Paid&q=Rossi", nil))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(res.Data) != 0 {
		t.Errorf("expected zero rows, got %d", len(res.Data))
	}
}

func TestUpdateMeasurementUnknownIDIs404(t *testing.T) {
	repo := &MockCustomerRepo{}
	router := testRouter(repo)

	req := authed(httptest.NewRequest("POST", "/api/customers", bytes.NewReader(createBody())))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	customerID := repo.customers[0].ID

	b, _ := json.Marshal(map[string]any{"date": "2024-05-20T09:45:00Z", "chest": 37})
	req = authed(httptest.NewRequest("PUT", "/api/customers/"+customerID+"/measurements/ghost", bytes.NewReader(b)))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
