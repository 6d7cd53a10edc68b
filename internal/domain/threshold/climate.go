package threshold

import (
	"room-summary/internal/domain/model"
	"room-summary/internal/domain/sensor"
)

type ClimateResult struct {
	Hot   bool `json:"hot"`
	Humid bool `json:"humid"`
}

// ClimateThresholds compares the room temperature and humidity against the
// configured limits (80 and 60 by default) with a strict greater-than. A value
// comes from the configured override entity's own reading when it is among the
// grouped sensors, otherwise from the first group of the device class.
func ClimateThresholds(thresholds *model.ThresholdsConfig, flags model.Flags, groups []model.SensorGroup) ClimateResult {
	if flags.Has(model.FeatureSkipClimateStyles) {
		return ClimateResult{}
	}

	tempLimit, humidLimit := DefaultTemperatureThreshold, DefaultHumidityThreshold
	var tempEntity, humidEntity string
	if thresholds != nil {
		if thresholds.Temperature != nil {
			tempLimit = *thresholds.Temperature
		}
		if thresholds.Humidity != nil {
			humidLimit = *thresholds.Humidity
		}
		tempEntity = thresholds.TemperatureEntity
		humidEntity = thresholds.HumidityEntity
	}

	temp, tempOK := climateValue(groups, model.DeviceClassTemperature, tempEntity)
	humid, humidOK := climateValue(groups, model.DeviceClassHumidity, humidEntity)
	return ClimateResult{
		Hot:   tempOK && temp > tempLimit,
		Humid: humidOK && humid > humidLimit,
	}
}

func climateValue(groups []model.SensorGroup, deviceClass, override string) (float64, bool) {
	if override != "" {
		for _, g := range groups {
			for _, s := range g.States {
				if s.EntityID == override {
					return sensor.NumericValue(s.State)
				}
			}
		}
	}
	g, ok := sensor.FindGroup(groups, deviceClass)
	if !ok {
		return 0, false
	}
	return g.Average, true
}
