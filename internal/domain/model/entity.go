package model

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	StateOn          = "on"
	StateOff         = "off"
	StateUnknown     = "unknown"
	StateUnavailable = "unavailable"
)

// RawState is one entry of the host state store.
type RawState struct {
	State      string                 `json:"state"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

type EntityRegistryEntry struct {
	EntityID string   `json:"entity_id,omitempty"`
	DeviceID string   `json:"device_id,omitempty"`
	AreaID   string   `json:"area_id,omitempty"`
	Labels   []string `json:"labels,omitempty"`
}

type DeviceRegistryEntry struct {
	AreaID string `json:"area_id,omitempty"`
}

// AreaRegistryEntry carries the area-level default sensor overrides.
type AreaRegistryEntry struct {
	AreaID              string `json:"area_id"`
	Name                string `json:"name,omitempty"`
	TemperatureEntityID string `json:"temperature_entity_id,omitempty"`
	HumidityEntityID    string `json:"humidity_entity_id,omitempty"`
	Icon                string `json:"icon,omitempty"`
	Picture             string `json:"picture,omitempty"`
}

// Snapshot is a read-only view of the host: states plus the entity, device and
// area registries. Callers must not mutate it while it is being read.
type Snapshot struct {
	States   map[string]RawState            `json:"states"`
	Entities map[string]EntityRegistryEntry `json:"entities"`
	Devices  map[string]DeviceRegistryEntry `json:"devices"`
	Areas    map[string]AreaRegistryEntry   `json:"areas"`
}

type EntityState struct {
	EntityID   string                 `json:"entity_id"`
	Domain     string                 `json:"domain"`
	State      string                 `json:"state"`
	Attributes map[string]interface{} `json:"attributes"`
}

func NewEntityState(entityID string, raw RawState) EntityState {
	attrs := raw.Attributes
	if attrs == nil {
		attrs = map[string]interface{}{}
	}
	return EntityState{
		EntityID:   entityID,
		Domain:     ComputeDomain(entityID),
		State:      raw.State,
		Attributes: attrs,
	}
}

// ComputeDomain returns the entity id prefix before the first ".".
func ComputeDomain(entityID string) string {
	domain, _, _ := strings.Cut(entityID, ".")
	return domain
}

func (e EntityState) Attr(name string) (interface{}, bool) {
	v, ok := e.Attributes[name]
	return v, ok && v != nil
}

func (e EntityState) StringAttr(name string) string {
	s, _ := e.Attributes[name].(string)
	return s
}

func (e EntityState) DeviceClass() string {
	return e.StringAttr("device_class")
}

func (e EntityState) Unit() string {
	return e.StringAttr("unit_of_measurement")
}

// AttrString renders an attribute the way the host stringifies it for
// comparisons: "" when absent, list items joined by ",".
func (e EntityState) AttrString(name string) string {
	v, ok := e.Attr(name)
	if !ok {
		return ""
	}
	return stringify(v)
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []interface{}:
		parts := make([]string, len(t))
		for i, item := range t {
			if item != nil {
				parts[i] = stringify(item)
			}
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}
