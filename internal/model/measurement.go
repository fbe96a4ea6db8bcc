package model

import "time"

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPartial PaymentStatus = "Partial"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentUnpaid, PaymentPartial:
		return true
	}
	return false
}

type CompletionStatus string

const (
	CompletionPending    CompletionStatus = "Pending"
	CompletionInProgress CompletionStatus = "In Progress"
	CompletionCompleted  CompletionStatus = "Completed"
)

func (s CompletionStatus) Valid() bool {
	switch s {
	case CompletionPending, CompletionInProgress, CompletionCompleted:
		return true
	}
	return false
}

// Measurement is one dated snapshot of a customer's body dimensions plus the
// job's payment/completion status. Numeric fields are pointers: nil means
// the tailor never took that measurement.
type Measurement struct {
	ID               string           `db:"id" json:"id"`
	CustomerID       string           `db:"customer_id" json:"customer_id"`
	UserID           string           `db:"user_id" json:"user_id"`
	Date             time.Time        `db:"date" json:"date"`
	PaymentStatus    PaymentStatus    `db:"payment_status" json:"payment_status"`
	CompletionStatus CompletionStatus `db:"completion_status" json:"completion_status"`

	Height               *float64 `db:"height" json:"height"`
	Neck                 *float64 `db:"neck" json:"neck"`
	Chest                *float64 `db:"chest" json:"chest"`
	Waist                *float64 `db:"waist" json:"waist"`
	Hips                 *float64 `db:"hips" json:"hips"`
	Shoulder             *float64 `db:"shoulder" json:"shoulder"`
	NeckWidth            *float64 `db:"neck_width" json:"neck_width"`
	Underbust            *float64 `db:"underbust" json:"underbust"`
	NippleToNipple       *float64 `db:"nipple_to_nipple" json:"nipple_to_nipple"`
	SingleShoulder       *float64 `db:"single_shoulder" json:"single_shoulder"`
	FrontDrop            *float64 `db:"front_drop" json:"front_drop"`
	BackDrop             *float64 `db:"back_drop" json:"back_drop"`
	SleeveLength         *float64 `db:"sleeve_length" json:"sleeve_length"`
	UpperarmWidth        *float64 `db:"upperarm_width" json:"upperarm_width"`
	ArmholeCurve         *float64 `db:"armhole_curve" json:"armhole_curve"`
	ArmholeCurveStraight *float64 `db:"armhole_curve_straight" json:"armhole_curve_straight"`
	ShoulderToWrist      *float64 `db:"shoulder_to_wrist" json:"shoulder_to_wrist"`
	ShoulderToElbow      *float64 `db:"shoulder_to_elbow" json:"shoulder_to_elbow"`
	InnerArmLength       *float64 `db:"inner_arm_length" json:"inner_arm_length"`
	SleeveOpening        *float64 `db:"sleeve_opening" json:"sleeve_opening"`
	CuffHeight           *float64 `db:"cuff_height" json:"cuff_height"`
	InseamLength         *float64 `db:"inseam_length" json:"inseam_length"`
	OutseamLength        *float64 `db:"outseam_length" json:"outseam_length"`
	WaistToKneeLength    *float64 `db:"waist_to_knee_length" json:"waist_to_knee_length"`
	WaistToAnkle         *float64 `db:"waist_to_ankle" json:"waist_to_ankle"`
	ThighCirc            *float64 `db:"thigh_circ" json:"thigh_circ"`
	AnkleCirc            *float64 `db:"ankle_circ" json:"ankle_circ"`
	BackRise             *float64 `db:"back_rise" json:"back_rise"`
	FrontRise            *float64 `db:"front_rise" json:"front_rise"`
	LegOpening           *float64 `db:"leg_opening" json:"leg_opening"`
	SeatLength           *float64 `db:"seat_length" json:"seat_length"`
	NeckBandWidth        *float64 `db:"neck_band_width" json:"neck_band_width"`
	CollarWidth          *float64 `db:"collar_width" json:"collar_width"`
	CollarPoint          *float64 `db:"collar_point" json:"collar_point"`
	WaistBand            *float64 `db:"waist_band" json:"waist_band"`
	ShoulderToWaist      *float64 `db:"shoulder_to_waist" json:"shoulder_to_waist"`
	ShoulderToAnkle      *float64 `db:"shoulder_to_ankle" json:"shoulder_to_ankle"`
}

// numericRefs maps a column name to its field on the struct, so that SQL
// scanning, insert argument building and validation can all walk
// MeasurementFields instead of repeating the 37 names.
var numericRefs = map[string]func(*Measurement) **float64{
	"height":                 func(m *Measurement) **float64 { return &m.Height },
	"neck":                   func(m *Measurement) **float64 { return &m.Neck },
	"chest":                  func(m *Measurement) **float64 { return &m.Chest },
	"waist":                  func(m *Measurement) **float64 { return &m.Waist },
	"hips":                   func(m *Measurement) **float64 { return &m.Hips },
	"shoulder":               func(m *Measurement) **float64 { return &m.Shoulder },
	"neck_width":             func(m *Measurement) **float64 { return &m.NeckWidth },
	"underbust":              func(m *Measurement) **float64 { return &m.Underbust },
	"nipple_to_nipple":       func(m *Measurement) **float64 { return &m.NippleToNipple },
	"single_shoulder":        func(m *Measurement) **float64 { return &m.SingleShoulder },
	"front_drop":             func(m *Measurement) **float64 { return &m.FrontDrop },
	"back_drop":              func(m *Measurement) **float64 { return &m.BackDrop },
	"sleeve_length":          func(m *Measurement) **float64 { return &m.SleeveLength },
	"upperarm_width":         func(m *Measurement) **float64 { return &m.UpperarmWidth },
	"armhole_curve":          func(m *Measurement) **float64 { return &m.ArmholeCurve },
	"armhole_curve_straight": func(m *Measurement) **float64 { return &m.ArmholeCurveStraight },
	"shoulder_to_wrist":      func(m *Measurement) **float64 { return &m.ShoulderToWrist },
	"shoulder_to_elbow":      func(m *Measurement) **float64 { return &m.ShoulderToElbow },
	"inner_arm_length":       func(m *Measurement) **float64 { return &m.InnerArmLength },
	"sleeve_opening":         func(m *Measurement) **float64 { return &m.SleeveOpening },
	"cuff_height":            func(m *Measurement) **float64 { return &m.CuffHeight },
	"inseam_length":          func(m *Measurement) **float64 { return &m.InseamLength },
	"outseam_length":         func(m *Measurement) **float64 { return &m.OutseamLength },
	"waist_to_knee_length":   func(m *Measurement) **float64 { return &m.WaistToKneeLength },
	"waist_to_ankle":         func(m *Measurement) **float64 { return &m.WaistToAnkle },
	"thigh_circ":             func(m *Measurement) **float64 { return &m.ThighCirc },
	"ankle_circ":             func(m *Measurement) **float64 { return &m.AnkleCirc },
	"back_rise":              func(m *Measurement) **float64 { return &m.BackRise },
	"front_rise":             func(m *Measurement) **float64 { return &m.FrontRise },
	"leg_opening":            func(m *Measurement) **float64 { return &m.LegOpening },
	"seat_length":            func(m *Measurement) **float64 { return &m.SeatLength },
	"neck_band_width":        func(m *Measurement) **float64 { return &m.NeckBandWidth },
	"collar_width":           func(m *Measurement) **float64 { return &m.CollarWidth },
	"collar_point":           func(m *Measurement) **float64 { return &m.CollarPoint },
	"waist_band":             func(m *Measurement) **float64 { return &m.WaistBand },
	"shoulder_to_waist":      func(m *Measurement) **float64 { return &m.ShoulderToWaist },
	"shoulder_to_ankle":      func(m *Measurement) **float64 { return &m.ShoulderToAnkle },
}

// FieldRef returns a scan destination for the named column, or nil when the
// column is not a measurement field.
func (m *Measurement) FieldRef(column string) **float64 {
	ref, ok := numericRefs[column]
	if !ok {
		return nil
	}
	return ref(m)
}

// FieldValue returns the value of the named column, nil when absent or
// unknown.
func (m *Measurement) FieldValue(column string) *float64 {
	ref := m.FieldRef(column)
	if ref == nil {
		return nil
	}
	return *ref
}
