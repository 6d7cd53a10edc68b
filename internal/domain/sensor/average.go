// Package sensor selects the sensors shown on a room card and folds them into
// per device class averages.
package sensor

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"room-summary/internal/domain/model"
)

// Device classes whose states are numeric even without a unit or state class.
var numericDeviceClasses = []string{
	"apparent_power", "aqi", "atmospheric_pressure", "battery", "carbon_dioxide",
	"carbon_monoxide", "current", "distance", "energy", "frequency", "gas",
	"humidity", "illuminance", "irradiance", "moisture", "nitrogen_dioxide",
	"ozone", "pm1", "pm10", "pm25", "power", "power_factor", "precipitation",
	"pressure", "signal_strength", "sound_pressure", "speed", "temperature",
	"volatile_organic_compounds", "voltage", "volume", "water", "weight",
}

// IsNumericSensor reports whether the entity declares a numeric state.
func IsNumericSensor(state model.EntityState) bool {
	if _, ok := state.Attr("unit_of_measurement"); ok {
		return true
	}
	if _, ok := state.Attr("state_class"); ok {
		return true
	}
	return lo.Contains(numericDeviceClasses, state.DeviceClass())
}

// NumericValue parses the trimmed state. Empty, non-finite and non-numeric
// states are rejected.
func NumericValue(state string) (float64, bool) {
	trimmed := strings.TrimSpace(state)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || isNonFinite(v) {
		return 0, false
	}
	return v, true
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// CalculateAverages emits one group per (device class, unit) pair. Classes
// keep the given order; within a class, units keep first-seen order.
func CalculateAverages(entities []model.EntityState, deviceClasses []string) []model.SensorGroup {
	var groups []model.SensorGroup
	for _, deviceClass := range lo.Uniq(deviceClasses) {
		var units []string
		byUnit := map[string][]model.EntityState{}
		for _, e := range entities {
			if e.DeviceClass() != deviceClass || !IsNumericSensor(e) {
				continue
			}
			if _, ok := NumericValue(e.State); !ok {
				continue
			}
			unit := e.Unit()
			if _, seen := byUnit[unit]; !seen {
				units = append(units, unit)
			}
			byUnit[unit] = append(byUnit[unit], e)
		}

		for _, unit := range units {
			states := byUnit[unit]
			groups = append(groups, model.SensorGroup{
				DeviceClass: deviceClass,
				Unit:        unit,
				States:      states,
				Average:     mean(states),
				Domain:      "sensor",
			})
		}
	}
	return groups
}

func mean(states []model.EntityState) float64 {
	if len(states) == 0 {
		return 0
	}
	sum := lo.Reduce(states, func(acc float64, s model.EntityState, _ int) float64 {
		v, _ := NumericValue(s.State)
		return acc + v
	}, 0.0)
	return sum / float64(len(states))
}

// FindGroup returns the first group of the device class.
func FindGroup(groups []model.SensorGroup, deviceClass string) (model.SensorGroup, bool) {
	return lo.Find(groups, func(g model.SensorGroup) bool { return g.DeviceClass == deviceClass })
}
