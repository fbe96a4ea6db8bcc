package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/stitchlink/stitchlink-backend/internal/errors"
	"github.com/stitchlink/stitchlink-backend/internal/model"
	"github.com/stitchlink/stitchlink-backend/internal/validate"
)

func fptr(v float64) *float64 { return &v }

func validContact() validate.Contact {
	return validate.Contact{
		Name:      "Jane Doe",
		Email:     "jane.doe@example.com",
		Phone:     "202-555-0114",
		NIC:       "199012345678",
		JobNumber: "JOB-014",
	}
}

func TestCustomerValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*validate.Contact)
		wantField string
	}{
		{"valid", func(c *validate.Contact) {}, ""},
		{"name too short", func(c *validate.Contact) { c.Name = "J" }, "name"},
		{"nic too short", func(c *validate.Contact) { c.NIC = "12345" }, "nic"},
		{"bad email", func(c *validate.Contact) { c.Email = "not-an-email" }, "email"},
		{"email missing domain dot", func(c *validate.Contact) { c.Email = "jane@example" }, "email"},
		{"phone too short", func(c *validate.Contact) { c.Phone = "555" }, "phone"},
		{"job number missing", func(c *validate.Contact) { c.JobNumber = "  " }, "job_number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContact()
			tt.mutate(&c)
			err := validate.Customer(c)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *appErrors.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Contains(t, ve.Fields, tt.wantField)
		})
	}
}

func TestCustomerValidationCollectsAllFields(t *testing.T) {
	err := validate.Customer(validate.Contact{})
	var ve *appErrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Fields, 5)
}

func TestMeasurementValidation(t *testing.T) {
	t.Run("nil and zero are accepted", func(t *testing.T) {
		m := model.Measurement{Chest: fptr(0), Waist: nil}
		assert.NoError(t, validate.Measurement(&m))
	})

	t.Run("negative value rejected", func(t *testing.T) {
		m := model.Measurement{Chest: fptr(-1)}
		err := validate.Measurement(&m)
		var ve *appErrors.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Fields, "chest")
	})

	t.Run("every field checked uniformly", func(t *testing.T) {
		var m model.Measurement
		for _, f := range model.MeasurementFields {
			*m.FieldRef(f.Column) = fptr(-0.5)
		}
		err := validate.Measurement(&m)
		var ve *appErrors.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Len(t, ve.Fields, len(model.MeasurementFields))
	})

	t.Run("unknown statuses rejected", func(t *testing.T) {
		m := model.Measurement{PaymentStatus: "Overdue", CompletionStatus: "Done"}
		err := validate.Measurement(&m)
		var ve *appErrors.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Fields, "payment_status")
		assert.Contains(t, ve.Fields, "completion_status")
	})

	t.Run("empty statuses allowed, defaults applied later", func(t *testing.T) {
		m := model.Measurement{}
		assert.NoError(t, validate.Measurement(&m))
	})
}
