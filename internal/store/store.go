package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	appErrors "github.com/stitchlink/stitchlink-backend/internal/errors"
	"github.com/stitchlink/stitchlink-backend/internal/model"
	"github.com/stitchlink/stitchlink-backend/internal/repository"
)

// CustomerStore is the local-persistence revision of the customer
// collection: an in-memory single-writer state container backed by one
// named JSON slot, read once at construction and rewritten after every
// mutation. It implements the same interface as the Postgres repository so
// the rest of the app cannot tell which one it is talking to.
type CustomerStore struct {
	mu        sync.Mutex
	path      string
	customers []model.Customer
}

// Open hydrates the store from the slot at path. A missing file is an empty
// collection, not an error.
func Open(path string) (*CustomerStore, error) {
	s := &CustomerStore{path: path, customers: []model.Customer{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &s.customers); err != nil {
		return nil, err
	}
	for i := range s.customers {
		sortMeasurements(s.customers[i].Measurements)
	}
	return s, nil
}

// persist rewrites the whole collection. Write-then-rename keeps the slot
// intact when the process dies mid-write.
func (s *CustomerStore) persist() error {
	data, err := json.MarshalIndent(s.customers, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func sortMeasurements(ms []model.Measurement) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Date.After(ms[j].Date)
	})
}

func (s *CustomerStore) CreateCustomer(c *model.Customer, first *model.Measurement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	cp := *c
	cp.Measurements = []model.Measurement{*first}

	s.customers = append(s.customers, cp)
	if err := s.persist(); err != nil {
		// Failed mutations leave the visible collection unchanged.
		s.customers = s.customers[:len(s.customers)-1]
		return err
	}
	return nil
}

func (s *CustomerStore) GetCustomer(userID, id string) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id && s.customers[i].UserID == userID {
			cp := s.customers[i]
			cp.Measurements = append([]model.Measurement{}, s.customers[i].Measurements...)
			return &cp, nil
		}
	}
	return nil, appErrors.NewCustomerNotFound(id)
}

func (s *CustomerStore) ListCustomers(userID string) ([]model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.Customer{}
	for i := range s.customers {
		if s.customers[i].UserID != userID {
			continue
		}
		cp := s.customers[i]
		cp.Measurements = append([]model.Measurement{}, s.customers[i].Measurements...)
		out = append(out, cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *CustomerStore) AddMeasurement(userID, customerID string, m *model.Measurement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != customerID || s.customers[i].UserID != userID {
			continue
		}
		m.CustomerID = customerID
		m.UserID = userID

		prev := s.customers[i].Measurements
		next := append(append([]model.Measurement{}, prev...), *m)
		sortMeasurements(next)
		s.customers[i].Measurements = next

		if err := s.persist(); err != nil {
			s.customers[i].Measurements = prev
			return err
		}
		return nil
	}
	return appErrors.NewCustomerNotFound(customerID)
}

func (s *CustomerStore) UpdateMeasurement(userID string, m *model.Measurement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != m.CustomerID || s.customers[i].UserID != userID {
			continue
		}
		prev := s.customers[i].Measurements
		next := append([]model.Measurement{}, prev...)
		for j := range next {
			if next[j].ID != m.ID {
				continue
			}
			m.UserID = userID
			next[j] = *m
			sortMeasurements(next)
			s.customers[i].Measurements = next

			if err := s.persist(); err != nil {
				s.customers[i].Measurements = prev
				return err
			}
			return nil
		}
		return appErrors.NewMeasurementNotFound(m.ID)
	}
	return appErrors.NewCustomerNotFound(m.CustomerID)
}

// Path returns the slot location, mostly for startup logging.
func (s *CustomerStore) Path() string {
	return filepath.Clean(s.path)
}

var _ repository.CustomerRepositoryInterface = (*CustomerStore)(nil)
