package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	appErrors "github.com/stitchlink/stitchlink-backend/internal/errors"
	"github.com/stitchlink/stitchlink-backend/internal/model"
)

type CustomerRepositoryInterface interface {
	// CreateCustomer inserts the customer and its first measurement as one
	// transaction: a failed measurement insert rolls the customer back.
	CreateCustomer(c *model.Customer, first *model.Measurement) error
	GetCustomer(userID, id string) (*model.Customer, error)
	ListCustomers(userID string) ([]model.Customer, error)
	AddMeasurement(userID, customerID string, m *model.Measurement) error
	UpdateMeasurement(userID string, m *model.Measurement) error
}

// CustomerRepository is the Postgres implementation.
type CustomerRepository struct {
	DB *sql.DB
}

var customerColumns = []string{
	"id", "user_id", "name", "email", "phone", "nic", "job_number", "request_date", "created_at",
}

var measurementBaseColumns = []string{
	"id", "customer_id", "user_id", "date", "payment_status", "completion_status",
}

func measurementColumnList() string {
	cols := append([]string{}, measurementBaseColumns...)
	cols = append(cols, model.MeasurementColumns()...)
	return strings.Join(cols, ", ")
}

func placeholderList(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ps, ", ")
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func measurementArgs(m *model.Measurement) []any {
	args := []any{m.ID, m.CustomerID, m.UserID, m.Date, m.PaymentStatus, m.CompletionStatus}
	for _, col := range model.MeasurementColumns() {
		args = append(args, m.FieldValue(col))
	}
	return args
}

func scanMeasurement(row rowScanner) (*model.Measurement, error) {
	var m model.Measurement
	dests := []any{&m.ID, &m.CustomerID, &m.UserID, &m.Date, &m.PaymentStatus, &m.CompletionStatus}
	for _, col := range model.MeasurementColumns() {
		dests = append(dests, m.FieldRef(col))
	}
	if err := row.Scan(dests...); err != nil {
		return nil, err
	}
	return &m, nil
}

func insertMeasurement(tx execer, m *model.Measurement) error {
	cols := measurementColumnList()
	n := len(measurementBaseColumns) + len(model.MeasurementFields)
	query := fmt.Sprintf("INSERT INTO measurements (%s) VALUES (%s)", cols, placeholderList(n))
	_, err := tx.Exec(query, measurementArgs(m)...)
	return err
}

// ====================== Customer ======================

func (r *CustomerRepository) CreateCustomer(c *model.Customer, first *model.Measurement) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := fmt.Sprintf(
		"INSERT INTO customers (%s) VALUES (%s)",
		strings.Join(customerColumns, ", "), placeholderList(len(customerColumns)),
	)
	_, err = tx.Exec(query, c.ID, c.UserID, c.Name, c.Email, c.Phone, c.NIC, c.JobNumber, c.RequestDate, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}

	if err := insertMeasurement(tx, first); err != nil {
		return fmt.Errorf("insert initial measurement: %w", err)
	}

	return tx.Commit()
}

func (r *CustomerRepository) GetCustomer(userID, id string) (*model.Customer, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM customers WHERE id=$1 AND user_id=$2",
		strings.Join(customerColumns, ", "),
	)
	var c model.Customer
	err := r.DB.QueryRow(query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.NIC, &c.JobNumber, &c.RequestDate, &c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCustomerNotFound(id)
		}
		return nil, err
	}

	measurements, err := r.measurementsFor(userID, id)
	if err != nil {
		return nil, err
	}
	c.Measurements = measurements
	return &c, nil
}

func (r *CustomerRepository) ListCustomers(userID string) ([]model.Customer, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM customers WHERE user_id=$1 ORDER BY created_at DESC",
		strings.Join(customerColumns, ", "),
	)
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	index := map[string]int{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.NIC, &c.JobNumber, &c.RequestDate, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Measurements = []model.Measurement{}
		index[c.ID] = len(customers)
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One related-record query for the whole tenant, bucketed per customer.
	// The DESC sort keeps each bucket newest-first.
	mQuery := fmt.Sprintf(
		"SELECT %s FROM measurements WHERE user_id=$1 ORDER BY date DESC",
		measurementColumnList(),
	)
	mRows, err := r.DB.Query(mQuery, userID)
	if err != nil {
		return nil, err
	}
	defer mRows.Close()

	for mRows.Next() {
		m, err := scanMeasurement(mRows)
		if err != nil {
			return nil, err
		}
		if i, ok := index[m.CustomerID]; ok {
			customers[i].Measurements = append(customers[i].Measurements, *m)
		}
	}
	if err := mRows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

// ====================== Measurements ======================

func (r *CustomerRepository) measurementsFor(userID, customerID string) ([]model.Measurement, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM measurements WHERE customer_id=$1 AND user_id=$2 ORDER BY date DESC",
		measurementColumnList(),
	)
	rows, err := r.DB.Query(query, customerID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	measurements := []model.Measurement{}
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		measurements = append(measurements, *m)
	}
	return measurements, rows.Err()
}

func (r *CustomerRepository) AddMeasurement(userID, customerID string, m *model.Measurement) error {
	var exists int
	err := r.DB.QueryRow(
		`SELECT 1 FROM customers WHERE id=$1 AND user_id=$2`, customerID, userID,
	).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.NewCustomerNotFound(customerID)
		}
		return err
	}

	m.CustomerID = customerID
	m.UserID = userID
	return insertMeasurement(r.DB, m)
}

func (r *CustomerRepository) UpdateMeasurement(userID string, m *model.Measurement) error {
	// Full replacement of the row, not a field-level merge.
	sets := []string{"date=$1", "payment_status=$2", "completion_status=$3"}
	args := []any{m.Date, m.PaymentStatus, m.CompletionStatus}
	argPos := 4
	for _, col := range model.MeasurementColumns() {
		sets = append(sets, fmt.Sprintf("%s=$%d", col, argPos))
		args = append(args, m.FieldValue(col))
		argPos++
	}

	query := fmt.Sprintf(
		"UPDATE measurements SET %s WHERE id=$%d AND customer_id=$%d AND user_id=$%d",
		strings.Join(sets, ", "), argPos, argPos+1, argPos+2,
	)
	args = append(args, m.ID, m.CustomerID, userID)

	res, err := r.DB.Exec(query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErrors.NewMeasurementNotFound(m.ID)
	}
	return nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
