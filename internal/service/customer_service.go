package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/stitchlink/stitchlink-backend/internal/errors"
	"github.com/stitchlink/stitchlink-backend/internal/model"
	"github.com/stitchlink/stitchlink-backend/internal/repository"
	"github.com/stitchlink/stitchlink-backend/internal/validate"
)

// CustomerService owns the customer/measurement mutation rules: validation
// before any store call, id/timestamp stamping, status defaults, and the
// date-descending ordering of every measurement list it hands out.
type CustomerService struct {
	Repo repository.CustomerRepositoryInterface
}

// ContactInput carries the customer form fields.
type ContactInput struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	NIC         string    `json:"nic"`
	JobNumber   string    `json:"job_number"`
	RequestDate time.Time `json:"request_date"`
}

func applyStatusDefaults(m *model.Measurement) {
	if m.PaymentStatus == "" {
		m.PaymentStatus = model.PaymentUnpaid
	}
	if m.CompletionStatus == "" {
		m.CompletionStatus = model.CompletionPending
	}
}

// mergeValidation folds two validation results into one error so a form with
// both a bad contact field and a negative measurement reports everything at
// once.
func mergeValidation(errs ...error) error {
	fields := map[string]string{}
	for _, err := range errs {
		if err == nil {
			continue
		}
		var ve *appErrors.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		for k, v := range ve.Fields {
			fields[k] = v
		}
	}
	if len(fields) > 0 {
		return appErrors.NewValidationError(fields)
	}
	return nil
}

// AddCustomer creates the customer together with its first measurement. Both
// rows land atomically or not at all.
func (s *CustomerService) AddCustomer(userID string, contact ContactInput, initial model.Measurement) (*model.Customer, error) {
	err := mergeValidation(
		validate.Customer(validate.Contact{
			Name:      contact.Name,
			Email:     contact.Email,
			Phone:     contact.Phone,
			NIC:       contact.NIC,
			JobNumber: contact.JobNumber,
		}),
		validate.Measurement(&initial),
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if contact.RequestDate.IsZero() {
		contact.RequestDate = now
	}

	customer := &model.Customer{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        contact.Name,
		Email:       contact.Email,
		Phone:       contact.Phone,
		NIC:         contact.NIC,
		JobNumber:   contact.JobNumber,
		RequestDate: contact.RequestDate,
		CreatedAt:   now,
	}

	initial.ID = uuid.NewString()
	initial.CustomerID = customer.ID
	initial.UserID = userID
	initial.Date = now
	applyStatusDefaults(&initial)

	if err := s.Repo.CreateCustomer(customer, &initial); err != nil {
		return nil, err
	}

	customer.Measurements = []model.Measurement{initial}
	return customer, nil
}

// AddMeasurement appends a fresh snapshot to an existing customer.
func (s *CustomerService) AddMeasurement(userID, customerID string, m model.Measurement) (*model.Measurement, error) {
	if err := validate.Measurement(&m); err != nil {
		return nil, err
	}

	m.ID = uuid.NewString()
	m.CustomerID = customerID
	m.UserID = userID
	m.Date = time.Now()
	applyStatusDefaults(&m)

	if err := s.Repo.AddMeasurement(userID, customerID, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMeasurement replaces the full record matching the given id. The
// payload must carry the record's date: an edit keeps the original capture
// date unless the tailor changed it on the form.
func (s *CustomerService) UpdateMeasurement(userID, customerID, measurementID string, m model.Measurement) (*model.Measurement, error) {
	if m.Date.IsZero() {
		return nil, appErrors.NewValidationError(map[string]string{"date": "A measurement date is required."})
	}
	if err := validate.Measurement(&m); err != nil {
		return nil, err
	}

	m.ID = measurementID
	m.CustomerID = customerID
	m.UserID = userID
	applyStatusDefaults(&m)

	if err := s.Repo.UpdateMeasurement(userID, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetCustomer fetches one customer with its measurement history, newest
// first.
func (s *CustomerService) GetCustomer(userID, id string) (*model.Customer, error) {
	return s.Repo.GetCustomer(userID, id)
}

// ListCustomers fetches the tenant's customers, optionally filtered by the
// free-text query.
func (s *CustomerService) ListCustomers(userID, query string) ([]model.Customer, error) {
	customers, err := s.Repo.ListCustomers(userID)
	if err != nil {
		return nil, err
	}
	return SearchCustomers(customers, query), nil
}

// ListOrders flattens every (customer, measurement) pair and applies the
// payment tab + search filters.
func (s *CustomerService) ListOrders(userID, paymentTab, query string) ([]model.Order, error) {
	customers, err := s.Repo.ListCustomers(userID)
	if err != nil {
		return nil, err
	}
	return FilterOrders(FlattenOrders(customers), paymentTab, query), nil
}
