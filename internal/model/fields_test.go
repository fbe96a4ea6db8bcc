package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchlink/stitchlink-backend/internal/model"
)

// The field table drives validation, SQL column lists and detail grouping;
// it has to stay in lockstep with the struct.
func TestEveryFieldHasAStructRef(t *testing.T) {
	var m model.Measurement
	for _, f := range model.MeasurementFields {
		require.NotNil(t, m.FieldRef(f.Column), "no struct field for column %s", f.Column)
		assert.NotEmpty(t, f.Label, "column %s has no label", f.Column)
	}
}

func TestFieldTableShape(t *testing.T) {
	assert.Len(t, model.MeasurementFields, 37)

	seen := map[string]bool{}
	for _, f := range model.MeasurementFields {
		assert.False(t, seen[f.Column], "duplicate column %s", f.Column)
		seen[f.Column] = true
		assert.Contains(t, model.Groups, f.Group, "column %s in unknown group", f.Column)
	}

	total := 0
	for _, g := range model.Groups {
		total += len(model.FieldsInGroup(g))
	}
	assert.Equal(t, len(model.MeasurementFields), total)
}

func TestFieldRefUnknownColumn(t *testing.T) {
	var m model.Measurement
	assert.Nil(t, m.FieldRef("no_such_column"))
	assert.Nil(t, m.FieldValue("no_such_column"))
}
