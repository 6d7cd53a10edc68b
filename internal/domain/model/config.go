package model

import "gopkg.in/yaml.v3"

type Operator string

const (
	OperatorEq  Operator = "eq"
	OperatorNe  Operator = "ne"
	OperatorGt  Operator = "gt"
	OperatorGte Operator = "gte"
	OperatorLt  Operator = "lt"
	OperatorLte Operator = "lte"
)

// ThresholdConfig is a numeric rule attached to an entity. Operator falls back
// to gte when empty or unrecognized.
type ThresholdConfig struct {
	Threshold float64           `yaml:"threshold" json:"threshold"`
	Operator  Operator          `yaml:"operator,omitempty" json:"operator,omitempty"`
	Attribute string            `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Icon      *string           `yaml:"icon,omitempty" json:"icon,omitempty"`
	IconColor string            `yaml:"icon_color,omitempty" json:"icon_color,omitempty"`
	Styles    map[string]string `yaml:"styles,omitempty" json:"styles,omitempty"`
}

// StateConfig is one badge rule. Operator falls back to eq.
type StateConfig struct {
	State     string            `yaml:"state" json:"state"`
	Attribute string            `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Operator  Operator          `yaml:"operator,omitempty" json:"operator,omitempty"`
	Icon      *string           `yaml:"icon,omitempty" json:"icon,omitempty"`
	IconColor string            `yaml:"icon_color,omitempty" json:"icon_color,omitempty"`
	Label     string            `yaml:"label,omitempty" json:"label,omitempty"`
	Styles    map[string]string `yaml:"styles,omitempty" json:"styles,omitempty"`
}

type BadgeConfig struct {
	Position string        `yaml:"position,omitempty" json:"position,omitempty"`
	Mode     string        `yaml:"mode,omitempty" json:"mode,omitempty"`
	EntityID string        `yaml:"entity_id,omitempty" json:"entity_id,omitempty"`
	States   []StateConfig `yaml:"states,omitempty" json:"states,omitempty"`
}

type EntityConfig struct {
	EntityID   string            `yaml:"entity_id" json:"entity_id"`
	Icon       *string           `yaml:"icon,omitempty" json:"icon,omitempty"`
	Label      string            `yaml:"label,omitempty" json:"label,omitempty"`
	Features   []string          `yaml:"features,omitempty" json:"features,omitempty"`
	Thresholds []ThresholdConfig `yaml:"thresholds,omitempty" json:"thresholds,omitempty"`
}

// UnmarshalYAML accepts both the full mapping and the bare entity id form.
func (e *EntityConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.EntityID = node.Value
		return nil
	}
	type plain EntityConfig
	return node.Decode((*plain)(e))
}

type ThresholdsConfig struct {
	Temperature       *float64 `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	Humidity          *float64 `yaml:"humidity,omitempty" json:"humidity,omitempty"`
	TemperatureEntity string   `yaml:"temperature_entity,omitempty" json:"temperature_entity,omitempty"`
	HumidityEntity    string   `yaml:"humidity_entity,omitempty" json:"humidity_entity,omitempty"`
}

type OccupancyConfig struct {
	Entities []string `yaml:"entities" json:"entities"`
	Options  []string `yaml:"options,omitempty" json:"options,omitempty"`
}

// Config is the card configuration. Only Area is required.
type Config struct {
	Area          string            `yaml:"area" json:"area"`
	Entity        *EntityConfig     `yaml:"entity,omitempty" json:"entity,omitempty"`
	Entities      []EntityConfig    `yaml:"entities,omitempty" json:"entities,omitempty"`
	Sensors       []string          `yaml:"sensors,omitempty" json:"sensors,omitempty"`
	SensorClasses []string          `yaml:"sensor_classes,omitempty" json:"sensor_classes,omitempty"`
	Thresholds    *ThresholdsConfig `yaml:"thresholds,omitempty" json:"thresholds,omitempty"`
	Features      []string          `yaml:"features,omitempty" json:"features,omitempty"`
	Occupancy     *OccupancyConfig  `yaml:"occupancy,omitempty" json:"occupancy,omitempty"`
	Badges        []BadgeConfig     `yaml:"badges,omitempty" json:"badges,omitempty"`
}

// DefaultSensorClasses applies when the card does not list sensor_classes.
var DefaultSensorClasses = []string{DeviceClassTemperature, DeviceClassHumidity, DeviceClassIlluminance}

func (c *Config) ClassList() []string {
	if c == nil || len(c.SensorClasses) == 0 {
		return DefaultSensorClasses
	}
	return c.SensorClasses
}
