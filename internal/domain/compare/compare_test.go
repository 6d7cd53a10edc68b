package compare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"room-summary/internal/domain/model"
)

func TestMeetsStateCondition(t *testing.T) {
	assert.True(t, MeetsStateCondition("on", "on", model.OperatorEq))
	assert.False(t, MeetsStateCondition("on", "off", model.OperatorEq))
	assert.True(t, MeetsStateCondition("on", "off", model.OperatorNe))
	assert.False(t, MeetsStateCondition("on", "on", model.OperatorNe))

	// Unknown and empty operators behave as eq
	assert.True(t, MeetsStateCondition("on", "on", "bogus"))
	assert.False(t, MeetsStateCondition("on", "off", "bogus"))
	assert.True(t, MeetsStateCondition("on", "on", ""))
}

func TestMeetsThreshold(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		cfg   model.ThresholdConfig
		want  bool
	}{
		{"gte equal", 10, model.ThresholdConfig{Threshold: 10, Operator: model.OperatorGte}, true},
		{"gte below", 9.999, model.ThresholdConfig{Threshold: 10, Operator: model.OperatorGte}, false},
		{"gt equal", 10, model.ThresholdConfig{Threshold: 10, Operator: model.OperatorGt}, false},
		{"gt above", 10.001, model.ThresholdConfig{Threshold: 10, Operator: model.OperatorGt}, true},
		{"lt below", 9, model.ThresholdConfig{Threshold: 10, Operator: model.OperatorLt}, true},
		{"lt equal", 10, model.ThresholdConfig{Threshold: 10, Operator: model.OperatorLt}, false},
		{"lte equal", 10, model.ThresholdConfig{Threshold: 10, Operator: model.OperatorLte}, true},
		{"lte above", 11, model.ThresholdConfig{Threshold: 10, Operator: model.OperatorLte}, false},
		{"eq equal", 10, model.ThresholdConfig{Threshold: 10, Operator: model.OperatorEq}, true},
		{"eq differs", 10.5, model.ThresholdConfig{Threshold: 10, Operator: model.OperatorEq}, false},
		{"default is gte", 10, model.ThresholdConfig{Threshold: 10}, true},
		{"unknown is gte", 9, model.ThresholdConfig{Threshold: 10, Operator: "between"}, false},
		{"unknown is gte above", 11, model.ThresholdConfig{Threshold: 10, Operator: "between"}, true},
		{"ne is not numeric, falls back to gte", 12, model.ThresholdConfig{Threshold: 10, Operator: model.OperatorNe}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MeetsThreshold(tt.value, tt.cfg))
		})
	}
}

func TestMeetsThreshold_NaN(t *testing.T) {
	for _, op := range []model.Operator{model.OperatorGt, model.OperatorGte, model.OperatorLt, model.OperatorLte, model.OperatorEq, ""} {
		assert.False(t, MeetsThreshold(math.NaN(), model.ThresholdConfig{Threshold: 10, Operator: op}), string(op))
	}
	assert.False(t, MeetsThreshold(10, model.ThresholdConfig{Threshold: math.NaN()}))
}
