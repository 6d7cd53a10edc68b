package threshold

import (
	"room-summary/internal/domain/compare"
	"room-summary/internal/domain/model"
	"room-summary/internal/domain/sensor"
)

// MatchEntityThreshold returns the first rule, in declared order, that the
// entity's state (or the rule's attribute) satisfies. Non-numeric values never
// match.
func MatchEntityThreshold(state model.EntityState, rules []model.ThresholdConfig) (model.ThresholdConfig, bool) {
	for _, rule := range rules {
		var value float64
		var ok bool
		if rule.Attribute != "" {
			value, ok = sensor.AttrNumber(state, rule.Attribute)
		} else {
			value, ok = sensor.NumericValue(state.State)
		}
		if ok && compare.MeetsThreshold(value, rule) {
			return rule, true
		}
	}
	return model.ThresholdConfig{}, false
}
