package validate

import (
	"strings"

	appErrors "github.com/stitchlink/stitchlink-backend/internal/errors"
	"github.com/stitchlink/stitchlink-backend/internal/model"
)

// Contact holds the customer form fields checked before any store call.
type Contact struct {
	Name      string
	Email     string
	Phone     string
	NIC       string
	JobNumber string
}

// Customer checks the contact fields against the form rules: name min 2,
// NIC min 10, email shape, phone min 10, job number required. Returns a
// *appErrors.ValidationError listing every offending field, or nil.
func Customer(c Contact) error {
	fields := map[string]string{}

	if len(strings.TrimSpace(c.Name)) < 2 {
		fields["name"] = "Name must be at least 2 characters."
	}
	if len(strings.TrimSpace(c.NIC)) < 10 {
		fields["nic"] = "Please enter a valid NIC number."
	}
	if !emailShape(c.Email) {
		fields["email"] = "Please enter a valid email address."
	}
	if len(strings.TrimSpace(c.Phone)) < 10 {
		fields["phone"] = "Phone number is too short."
	}
	if strings.TrimSpace(c.JobNumber) == "" {
		fields["job_number"] = "Job number is required."
	}

	if len(fields) > 0 {
		return appErrors.NewValidationError(fields)
	}
	return nil
}

// Measurement checks every numeric field for non-negativity (nil is fine,
// zero is fine) and the two status enums when set.
func Measurement(m *model.Measurement) error {
	fields := map[string]string{}

	for _, f := range model.MeasurementFields {
		v := m.FieldValue(f.Column)
		if v != nil && *v < 0 {
			fields[f.Column] = f.Label + " must be zero or positive."
		}
	}

	if m.PaymentStatus != "" && !m.PaymentStatus.Valid() {
		fields["payment_status"] = "Payment status must be Paid, Unpaid or Partial."
	}
	if m.CompletionStatus != "" && !m.CompletionStatus.Valid() {
		fields["completion_status"] = "Completion status must be Pending, In Progress or Completed."
	}

	if len(fields) > 0 {
		return appErrors.NewValidationError(fields)
	}
	return nil
}

// emailShape accepts anything of the form local@domain.tld. The identity
// provider does the real verification; this only catches typos at the form.
func emailShape(s string) bool {
	at := strings.Index(s, "@")
	if at < 1 || at != strings.LastIndex(s, "@") {
		return false
	}
	domain := s[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
