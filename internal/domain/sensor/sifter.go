package sensor

import (
	"github.com/samber/lo"
	"room-summary/internal/domain/model"
)

// IsEligibleClassSensor decides whether a sensor counts toward the area
// aggregates. Precedence: exclusion flag, then the area's declared default
// sensors (always included), then suppression of other sensors of a class
// that has a declared default, then include.
func IsEligibleClassSensor(state model.EntityState, flags model.Flags, area *model.AreaRegistryEntry, sensorClasses []string) bool {
	if flags.Has(model.FeatureExcludeDefaultEntities) {
		return false
	}
	deviceClass := state.DeviceClass()
	if state.Domain != "sensor" || !lo.Contains(sensorClasses, deviceClass) {
		return false
	}
	if area == nil {
		return true
	}

	if area.TemperatureEntityID != "" && state.EntityID == area.TemperatureEntityID {
		return true
	}
	if area.HumidityEntityID != "" && state.EntityID == area.HumidityEntityID {
		return true
	}

	if deviceClass == model.DeviceClassTemperature && area.TemperatureEntityID != "" {
		return false
	}
	if deviceClass == model.DeviceClassHumidity && area.HumidityEntityID != "" {
		return false
	}
	return true
}
