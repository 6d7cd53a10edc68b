package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"room-summary/internal/domain/model"
)

func sensorState(id, state, deviceClass, unit string) model.EntityState {
	attrs := map[string]interface{}{"device_class": deviceClass}
	if unit != "" {
		attrs["unit_of_measurement"] = unit
	}
	return model.NewEntityState(id, model.RawState{State: state, Attributes: attrs})
}

func TestIsEligibleClassSensor(t *testing.T) {
	classes := []string{"temperature", "humidity", "illuminance"}
	area := &model.AreaRegistryEntry{AreaID: "kitchen", TemperatureEntityID: "sensor.a"}
	flags := model.NewFlags()

	a := sensorState("sensor.a", "70", "temperature", "°F")
	b := sensorState("sensor.b", "71", "temperature", "°F")
	c := sensorState("sensor.c", "72", "temperature", "°F")
	assert.True(t, IsEligibleClassSensor(a, flags, area, classes))
	assert.False(t, IsEligibleClassSensor(b, flags, area, classes))
	assert.False(t, IsEligibleClassSensor(c, flags, area, classes))

	// Humidity has no declared default, so every humidity sensor counts
	h := sensorState("sensor.h", "40", "humidity", "%")
	assert.True(t, IsEligibleClassSensor(h, flags, area, classes))

	// A declared humidity default is included, other humidity sensors are suppressed
	area.HumidityEntityID = "sensor.h"
	assert.True(t, IsEligibleClassSensor(h, flags, area, classes))
	h2 := sensorState("sensor.h2", "41", "humidity", "%")
	assert.False(t, IsEligibleClassSensor(h2, flags, area, classes))

	// No area: default include
	assert.True(t, IsEligibleClassSensor(b, flags, nil, classes))

	// Exclusion flag beats the area default
	assert.False(t, IsEligibleClassSensor(a, model.NewFlags("exclude_default_entities"), area, classes))
	// Absent config reads as every flag set
	assert.False(t, IsEligibleClassSensor(a, model.FlagsOf(nil), area, classes))

	// Wrong domain or class
	binary := model.NewEntityState("binary_sensor.a", model.RawState{State: "on", Attributes: map[string]interface{}{"device_class": "temperature"}})
	assert.False(t, IsEligibleClassSensor(binary, flags, nil, classes))
	assert.False(t, IsEligibleClassSensor(sensorState("sensor.p", "1000", "pressure", "hPa"), flags, nil, classes))
}

func TestCalculateAverages(t *testing.T) {
	entities := []model.EntityState{
		sensorState("sensor.kitchen_temp", "72", "temperature", "°F"),
		sensorState("sensor.kitchen_temp2", "74", "temperature", "°F"),
	}
	groups := CalculateAverages(entities, []string{"temperature"})
	require.Len(t, groups, 1)
	assert.Equal(t, 73.0, groups[0].Average)
	assert.Equal(t, "°F", groups[0].Unit)
	assert.Equal(t, "sensor", groups[0].Domain)
	assert.Len(t, groups[0].States, 2)
	assert.Equal(t, "73°F", FormatAverage(groups[0]))
}

func TestCalculateAverages_GroupsByUnitInOrder(t *testing.T) {
	entities := []model.EntityState{
		sensorState("sensor.h1", "40", "humidity", "%"),
		sensorState("sensor.t1", "21", "temperature", "°C"),
		sensorState("sensor.t2", "70", "temperature", "°F"),
		sensorState("sensor.t3", " 23 ", "temperature", "°C"),
		sensorState("sensor.t4", "unavailable", "temperature", "°C"),
		sensorState("sensor.t5", "", "temperature", "°C"),
		sensorState("sensor.l1", "300", "illuminance", "lx"),
	}
	groups := CalculateAverages(entities, []string{"temperature", "humidity", "pressure", "temperature"})
	require.Len(t, groups, 3)

	assert.Equal(t, "temperature", groups[0].DeviceClass)
	assert.Equal(t, "°C", groups[0].Unit)
	assert.Equal(t, 22.0, groups[0].Average)
	assert.Len(t, groups[0].States, 2)

	assert.Equal(t, "temperature", groups[1].DeviceClass)
	assert.Equal(t, "°F", groups[1].Unit)
	assert.Equal(t, 70.0, groups[1].Average)

	assert.Equal(t, "humidity", groups[2].DeviceClass)
	assert.Equal(t, 40.0, groups[2].Average)

	seen := map[[2]string]bool{}
	for _, g := range groups {
		key := [2]string{g.DeviceClass, g.Unit}
		assert.False(t, seen[key], "duplicate group %v", key)
		seen[key] = true

		require.NotEmpty(t, g.States)
		sum := 0.0
		for _, s := range g.States {
			v, ok := NumericValue(s.State)
			require.True(t, ok)
			sum += v
		}
		assert.InDelta(t, sum/float64(len(g.States)), g.Average, 1e-9)
	}
}

func TestCalculateAverages_NumericDetection(t *testing.T) {
	// No unit, but state_class marks it numeric
	withStateClass := model.NewEntityState("sensor.x", model.RawState{State: "5", Attributes: map[string]interface{}{
		"device_class": "enum_like",
		"state_class":  "measurement",
	}})
	// No unit and a non-numeric class
	plain := model.NewEntityState("sensor.y", model.RawState{State: "5", Attributes: map[string]interface{}{
		"device_class": "enum_like",
	}})
	groups := CalculateAverages([]model.EntityState{withStateClass, plain}, []string{"enum_like"})
	require.Len(t, groups, 1)
	assert.Equal(t, "", groups[0].Unit)
	assert.Len(t, groups[0].States, 1)

	// Numeric device class without unit groups under the empty unit
	groups = CalculateAverages([]model.EntityState{sensorState("sensor.t", "20", "temperature", "")}, []string{"temperature"})
	require.Len(t, groups, 1)
	assert.Equal(t, "20", FormatAverage(groups[0]))

	assert.Empty(t, CalculateAverages(nil, []string{"temperature"}))
}

func TestNumericValue(t *testing.T) {
	v, ok := NumericValue(" 21.5 ")
	assert.True(t, ok)
	assert.Equal(t, 21.5, v)

	for _, s := range []string{"", "  ", "on", "NaN", "Inf", "12abc"} {
		_, ok := NumericValue(s)
		assert.False(t, ok, s)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "73°F", FormatValue(73, "°F"))
	assert.Equal(t, "21.5°C", FormatValue(21.47, "°C"))
	assert.Equal(t, "45%", FormatValue(45.04, "%"))
	assert.Equal(t, "1013.2 hPa", FormatValue(1013.24, "hPa"))
	assert.Equal(t, "300 lx", FormatValue(300.0, "lx"))
	assert.Equal(t, "22", FormatValue(22.0, ""))
	assert.Equal(t, "0 W", FormatValue(-0.01, "W"))
}

func TestFindGroup(t *testing.T) {
	groups := []model.SensorGroup{{DeviceClass: "humidity", Average: 40}, {DeviceClass: "temperature", Average: 20}}
	g, ok := FindGroup(groups, "temperature")
	assert.True(t, ok)
	assert.Equal(t, 20.0, g.Average)
	_, ok = FindGroup(groups, "pressure")
	assert.False(t, ok)
}
