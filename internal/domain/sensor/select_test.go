package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"room-summary/internal/domain/model"
)

func areaSnapshot() *model.Snapshot {
	attrs := func(dc, unit string) map[string]interface{} {
		return map[string]interface{}{"device_class": dc, "unit_of_measurement": unit}
	}
	return &model.Snapshot{
		States: map[string]model.RawState{
			"sensor.living_temp":     {State: "21", Attributes: attrs("temperature", "°C")},
			"sensor.living_temp_2":   {State: "23", Attributes: attrs("temperature", "°C")},
			"sensor.living_humidity": {State: "45", Attributes: attrs("humidity", "%")},
			"sensor.living_lux":      {State: "300", Attributes: attrs("illuminance", "lx")},
			"sensor.living_power":    {State: "120", Attributes: attrs("power", "W")},
			"sensor.kitchen_temp":    {State: "25", Attributes: attrs("temperature", "°C")},
		},
		Entities: map[string]model.EntityRegistryEntry{
			"sensor.living_temp":     {AreaID: "living"},
			"sensor.living_temp_2":   {DeviceID: "thermo"},
			"sensor.living_humidity": {AreaID: "living"},
			"sensor.living_lux":      {AreaID: "living"},
			"sensor.living_power":    {AreaID: "living"},
			"sensor.kitchen_temp":    {AreaID: "kitchen"},
		},
		Devices: map[string]model.DeviceRegistryEntry{
			"thermo": {AreaID: "living"},
		},
		Areas: map[string]model.AreaRegistryEntry{
			"living": {Name: "Living"},
		},
	}
}

func ids(states []model.EntityState) []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, s.EntityID)
	}
	return out
}

func TestGetSensors_Order(t *testing.T) {
	cfg := &model.Config{Area: "living", Sensors: []string{"sensor.living_power", "sensor.kitchen_temp"}}
	sensors := GetSensors(areaSnapshot(), cfg)
	assert.Equal(t, []string{
		"sensor.living_temp",
		"sensor.living_temp_2",
		"sensor.living_humidity",
		"sensor.living_power",
		"sensor.kitchen_temp",
	}, ids(sensors))
}

func TestGetSensors_ConfiguredNotDuplicated(t *testing.T) {
	cfg := &model.Config{Area: "living", Sensors: []string{"sensor.living_temp", "sensor.living_temp"}}
	sensors := GetSensors(areaSnapshot(), cfg)
	assert.Equal(t, []string{
		"sensor.living_temp_2",
		"sensor.living_humidity",
		"sensor.living_temp",
	}, ids(sensors))
}

func TestGetSensors_AreaDefaultSuppresses(t *testing.T) {
	snap := areaSnapshot()
	snap.Areas["living"] = model.AreaRegistryEntry{TemperatureEntityID: "sensor.living_temp_2"}
	sensors := GetSensors(snap, &model.Config{Area: "living"})
	assert.Equal(t, []string{"sensor.living_temp_2", "sensor.living_humidity"}, ids(sensors))
}

func TestGetSensors_ExcludedDefaults(t *testing.T) {
	cfg := &model.Config{
		Area:     "living",
		Sensors:  []string{"sensor.living_lux"},
		Features: []string{"exclude_default_entities"},
	}
	assert.Equal(t, []string{"sensor.living_lux"}, ids(GetSensors(areaSnapshot(), cfg)))
	assert.Empty(t, ClassSensors(areaSnapshot(), cfg))
}

func TestGetSensors_Absent(t *testing.T) {
	assert.Nil(t, GetSensors(nil, &model.Config{Area: "living"}))
	assert.Nil(t, GetSensors(areaSnapshot(), nil))
}

func TestClassSensors_FeedsAverages(t *testing.T) {
	cfg := &model.Config{Area: "living"}
	classSensors := ClassSensors(areaSnapshot(), cfg)
	assert.Equal(t, []string{
		"sensor.living_humidity",
		"sensor.living_lux",
		"sensor.living_temp",
		"sensor.living_temp_2",
	}, ids(classSensors))

	groups := CalculateAverages(classSensors, cfg.ClassList())
	require.Len(t, groups, 3)
	assert.Equal(t, "22°C", FormatAverage(groups[0]))
	assert.Equal(t, "45%", FormatAverage(groups[1]))
	assert.Equal(t, "300 lx", FormatAverage(groups[2]))
}
