package threshold

import (
	"github.com/samber/lo"
	"room-summary/internal/domain/model"
	"room-summary/internal/domain/sensor"
)

type HitResult struct {
	OverTemp  bool `json:"over_temp"`
	OverHumid bool `json:"over_humid"`
}

// HitThresholds uses the first temperature and humidity sensors of the list.
// Both limits are read from the temperature sensor's temperature_threshold and
// humidity_threshold attributes. An unparsable limit or reading clears only
// its own flag.
func HitThresholds(flags model.Flags, sensors []model.EntityState) HitResult {
	if flags.Has(model.FeatureSkipClimateStyles) {
		return HitResult{}
	}
	temp, tempOK := lo.Find(sensors, func(s model.EntityState) bool {
		return s.DeviceClass() == model.DeviceClassTemperature
	})
	humid, humidOK := lo.Find(sensors, func(s model.EntityState) bool {
		return s.DeviceClass() == model.DeviceClassHumidity
	})
	if !tempOK || !humidOK {
		return HitResult{}
	}

	return HitResult{
		OverTemp:  over(temp, temp, "temperature_threshold", DefaultTemperatureThreshold),
		OverHumid: over(humid, temp, "humidity_threshold", DefaultHumidityThreshold),
	}
}

func over(reading, carrier model.EntityState, attribute string, fallback float64) bool {
	value, ok := sensor.NumericValue(reading.State)
	if !ok {
		return false
	}
	limit := fallback
	if raw, present := carrier.Attr(attribute); present {
		if limit, ok = sensor.ToFloat(raw); !ok {
			return false
		}
	}
	return value > limit
}
