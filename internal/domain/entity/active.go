package entity

import (
	"github.com/samber/lo"
	"room-summary/internal/domain/model"
)

var alwaysActiveDomains = []string{"button", "event", "input_button", "scene"}

// IsActive reports whether the entity is in an "active" state for its domain.
func IsActive(state model.EntityState) bool {
	return IsActiveState(state.Domain, state.State)
}

func IsActiveState(domain, state string) bool {
	if lo.Contains(alwaysActiveDomains, domain) {
		return state != model.StateUnavailable
	}
	if state == model.StateUnavailable || state == model.StateUnknown {
		return false
	}
	if state == model.StateOff && domain != "alert" {
		return false
	}

	switch domain {
	case "alarm_control_panel":
		return state != "disarmed"
	case "alert":
		return state != "idle"
	case "cover", "valve":
		return state != "closed"
	case "device_tracker", "person":
		return state != "not_home"
	case "lawn_mower":
		return state == "mowing" || state == "error"
	case "lock":
		return state != "locked"
	case "media_player":
		return state != "standby"
	case "vacuum":
		return !lo.Contains([]string{"idle", "docked", "paused"}, state)
	case "plant":
		return state == "problem"
	case "group":
		return lo.Contains([]string{"on", "home", "open", "locked", "problem"}, state)
	case "timer":
		return state == "active"
	case "camera":
		return state == "streaming"
	}
	return true
}
