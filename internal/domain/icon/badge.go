package icon

import (
	"room-summary/internal/domain/compare"
	"room-summary/internal/domain/model"
)

// GetMatchingBadgeState returns the first rule of the badge that matches the
// entity. A rule with an attribute compares the stringified attribute value
// ("" when absent); otherwise it compares the entity state.
func GetMatchingBadgeState(state model.EntityState, badge model.BadgeConfig) (model.StateConfig, bool) {
	for _, rule := range badge.States {
		value := state.State
		if rule.Attribute != "" {
			value = state.AttrString(rule.Attribute)
		}
		if compare.MeetsStateCondition(value, rule.State, rule.Operator) {
			return rule, true
		}
	}
	return model.StateConfig{}, false
}
