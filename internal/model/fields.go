package model

// Field describes one numeric measurement column: the SQL/JSON name, the
// label shown on detail cards, and the display group it belongs to.
type Field struct {
	Column string
	Label  string
	Group  string
}

// Display groups, in render order.
const (
	GroupCore      = "Core"
	GroupUpperBody = "Upper Body"
	GroupArm       = "Arm"
	GroupLowerBody = "Lower Body"
	GroupGarment   = "Garment Specific"
)

// Groups lists the display groups in the order detail views render them.
var Groups = []string{GroupCore, GroupUpperBody, GroupArm, GroupLowerBody, GroupGarment}

// MeasurementFields is the single source of truth for the measurement field
// list. Validation, SQL column lists and detail-view grouping all derive
// from it.
var MeasurementFields = []Field{
	{"height", "Height", GroupCore},
	{"neck", "Neck", GroupCore},
	{"chest", "Chest", GroupCore},
	{"waist", "Waist", GroupCore},
	{"hips", "Hips", GroupCore},

	{"shoulder", "Shoulder", GroupUpperBody},
	{"neck_width", "Neck Width", GroupUpperBody},
	{"underbust", "Underbust", GroupUpperBody},
	{"nipple_to_nipple", "Nipple to Nipple", GroupUpperBody},
	{"single_shoulder", "Single Shoulder", GroupUpperBody},
	{"front_drop", "Front Drop", GroupUpperBody},
	{"back_drop", "Back Drop", GroupUpperBody},

	{"sleeve_length", "Sleeve Length", GroupArm},
	{"upperarm_width", "Upperarm Width", GroupArm},
	{"armhole_curve", "Armhole Curve", GroupArm},
	{"armhole_curve_straight", "Armhole Curve (Straight)", GroupArm},
	{"shoulder_to_wrist", "Shoulder to Wrist", GroupArm},
	{"shoulder_to_elbow", "Shoulder to Elbow", GroupArm},
	{"inner_arm_length", "Inner Arm Length", GroupArm},
	{"sleeve_opening", "Sleeve Opening", GroupArm},
	{"cuff_height", "Cuff Height", GroupArm},

	{"inseam_length", "Inseam Length", GroupLowerBody},
	{"outseam_length", "Outseam Length", GroupLowerBody},
	{"waist_to_knee_length", "Waist to Knee Length", GroupLowerBody},
	{"waist_to_ankle", "Waist to Ankle", GroupLowerBody},
	{"thigh_circ", "Thigh Circ.", GroupLowerBody},
	{"ankle_circ", "Ankle Circ.", GroupLowerBody},
	{"back_rise", "Back Rise", GroupLowerBody},
	{"front_rise", "Front Rise", GroupLowerBody},
	{"leg_opening", "Leg Opening", GroupLowerBody},
	{"seat_length", "Seat Length", GroupLowerBody},

	{"neck_band_width", "Neck Band Width", GroupGarment},
	{"collar_width", "Collar Width", GroupGarment},
	{"collar_point", "Collar Point", GroupGarment},
	{"waist_band", "Waist Band", GroupGarment},
	{"shoulder_to_waist", "Shoulder to Waist", GroupGarment},
	{"shoulder_to_ankle", "Shoulder to Ankle", GroupGarment},
}

// MeasurementColumns returns the numeric column names in canonical order.
func MeasurementColumns() []string {
	cols := make([]string, len(MeasurementFields))
	for i, f := range MeasurementFields {
		cols[i] = f.Column
	}
	return cols
}

// FieldsInGroup returns the fields belonging to one display group, in
// canonical order.
func FieldsInGroup(group string) []Field {
	fields := []Field{}
	for _, f := range MeasurementFields {
		if f.Group == group {
			fields = append(fields, f)
		}
	}
	return fields
}
