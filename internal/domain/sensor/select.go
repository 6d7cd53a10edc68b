package sensor

import (
	"slices"

	"github.com/samber/lo"
	"room-summary/internal/domain/entity"
	"room-summary/internal/domain/model"
)

// GetSensors lists the sensors shown individually on the card: the area's
// default temperature sensors, then its default humidity sensors, then the
// configured sensors in configured order. A configured sensor never appears
// among the defaults.
func GetSensors(snapshot *model.Snapshot, cfg *model.Config) []model.EntityState {
	if snapshot == nil || cfg == nil {
		return nil
	}
	classSensors := ClassSensors(snapshot, cfg)
	temperature := lo.Filter(classSensors, func(s model.EntityState, _ int) bool {
		return s.DeviceClass() == model.DeviceClassTemperature
	})
	humidity := lo.Filter(classSensors, func(s model.EntityState, _ int) bool {
		return s.DeviceClass() == model.DeviceClassHumidity
	})

	sensors := append(temperature, humidity...)
	return append(sensors, ConfiguredSensors(snapshot, cfg)...)
}

// ConfiguredSensors resolves config.sensors in order, skipping ids missing
// from the snapshot and repeated ids.
func ConfiguredSensors(snapshot *model.Snapshot, cfg *model.Config) []model.EntityState {
	if snapshot == nil || cfg == nil {
		return nil
	}
	var sensors []model.EntityState
	for _, id := range lo.Uniq(cfg.Sensors) {
		if state, ok := entity.GetState(snapshot, id); ok {
			sensors = append(sensors, state)
		}
	}
	return sensors
}

// ClassSensors returns every eligible, non-configured sensor of the card's
// area, ordered by entity id. It is the input to CalculateAverages.
func ClassSensors(snapshot *model.Snapshot, cfg *model.Config) []model.EntityState {
	if snapshot == nil || cfg == nil {
		return nil
	}
	flags := model.FlagsOf(cfg)
	area := entity.Area(snapshot, cfg.Area)
	classes := cfg.ClassList()

	ids := lo.Keys(snapshot.Entities)
	slices.Sort(ids)

	var sensors []model.EntityState
	for _, id := range ids {
		if lo.Contains(cfg.Sensors, id) || !entity.InArea(snapshot, id, cfg.Area) {
			continue
		}
		state, ok := entity.GetState(snapshot, id)
		if !ok {
			continue
		}
		if IsEligibleClassSensor(state, flags, area, classes) {
			sensors = append(sensors, state)
		}
	}
	return sensors
}
