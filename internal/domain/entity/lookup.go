// Package entity normalizes snapshot entries into EntityState values and
// answers the per-entity questions the rest of the pipeline asks.
package entity

import (
	"github.com/samber/lo"
	"room-summary/internal/domain/model"
)

// GetState returns the normalized state for id, or false when the snapshot
// has no such entity.
func GetState(snapshot *model.Snapshot, id string) (model.EntityState, bool) {
	if snapshot == nil || id == "" {
		return model.EntityState{}, false
	}
	raw, ok := snapshot.States[id]
	if !ok {
		return model.EntityState{}, false
	}
	return model.NewEntityState(id, raw), true
}

// GetStateOrPlaceholder synthesizes an "off" state with no attributes for a
// missing entity. Used for the room's primary entity.
func GetStateOrPlaceholder(snapshot *model.Snapshot, id string) model.EntityState {
	if state, ok := GetState(snapshot, id); ok {
		return state
	}
	return model.NewEntityState(id, model.RawState{State: model.StateOff})
}

// AreaOf resolves the entity's own area, falling back to its device's area.
func AreaOf(snapshot *model.Snapshot, id string) string {
	if snapshot == nil {
		return ""
	}
	entry, ok := snapshot.Entities[id]
	if !ok {
		return ""
	}
	if entry.AreaID != "" {
		return entry.AreaID
	}
	if entry.DeviceID == "" {
		return ""
	}
	return snapshot.Devices[entry.DeviceID].AreaID
}

func InArea(snapshot *model.Snapshot, id, area string) bool {
	return area != "" && AreaOf(snapshot, id) == area
}

func HasLabel(snapshot *model.Snapshot, id, label string) bool {
	if snapshot == nil {
		return false
	}
	return lo.Contains(snapshot.Entities[id].Labels, label)
}

// Area returns the registry entry for the area, or nil.
func Area(snapshot *model.Snapshot, area string) *model.AreaRegistryEntry {
	if snapshot == nil {
		return nil
	}
	entry, ok := snapshot.Areas[area]
	if !ok {
		return nil
	}
	if entry.AreaID == "" {
		entry.AreaID = area
	}
	return &entry
}
