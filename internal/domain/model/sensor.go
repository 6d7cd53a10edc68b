package model

const (
	DeviceClassTemperature = "temperature"
	DeviceClassHumidity    = "humidity"
	DeviceClassIlluminance = "illuminance"
)

// SensorGroup is the average of every eligible sensor sharing a device class
// and unit of measurement. States is never empty.
type SensorGroup struct {
	DeviceClass string        `json:"device_class"`
	Unit        string        `json:"uom"`
	States      []EntityState `json:"states"`
	Average     float64       `json:"average"`
	Domain      string        `json:"domain"`
}
