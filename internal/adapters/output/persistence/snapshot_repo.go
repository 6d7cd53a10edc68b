package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"room-summary/internal/domain/model"
)

// JSONSnapshotSource reads a snapshot dump from disk on every call.
type JSONSnapshotSource struct {
	filepath string
	logger   *logrus.Logger
	mu       sync.RWMutex
}

// Shape of a raw /api/states dump, accepted as a states-only snapshot.
type restState struct {
	EntityID   string                 `json:"entity_id"`
	State      string                 `json:"state"`
	Attributes map[string]interface{} `json:"attributes"`
}

func NewJSONSnapshotSource(filepath string, logger *logrus.Logger) *JSONSnapshotSource {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &JSONSnapshotSource{filepath: filepath, logger: logger}
}

func (r *JSONSnapshotSource) Snapshot(ctx context.Context) (*model.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.WithField("path", r.filepath).Warn("snapshot file not found, using empty snapshot")
			return emptySnapshot(), nil
		}
		return nil, fmt.Errorf("read snapshot %s: %w", r.filepath, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return r.fromStates(trimmed)
	}

	snapshot := emptySnapshot()
	if err := json.Unmarshal(trimmed, snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", r.filepath, err)
	}
	fillRegistryIDs(snapshot)
	return snapshot, nil
}

func (r *JSONSnapshotSource) fromStates(data []byte) (*model.Snapshot, error) {
	var states []restState
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, fmt.Errorf("decode state list %s: %w", r.filepath, err)
	}

	snapshot := emptySnapshot()
	for _, s := range states {
		if s.EntityID == "" {
			continue
		}
		snapshot.States[s.EntityID] = model.RawState{State: s.State, Attributes: s.Attributes}
	}
	r.logger.WithFields(logrus.Fields{
		"path":   r.filepath,
		"states": len(snapshot.States),
	}).Info("loaded state list without registries, area lookups will be empty")
	return snapshot, nil
}

func emptySnapshot() *model.Snapshot {
	return &model.Snapshot{
		States:   map[string]model.RawState{},
		Entities: map[string]model.EntityRegistryEntry{},
		Devices:  map[string]model.DeviceRegistryEntry{},
		Areas:    map[string]model.AreaRegistryEntry{},
	}
}

func fillRegistryIDs(snapshot *model.Snapshot) {
	for id, e := range snapshot.Entities {
		if e.EntityID == "" {
			e.EntityID = id
			snapshot.Entities[id] = e
		}
	}
	for id, a := range snapshot.Areas {
		if a.AreaID == "" {
			a.AreaID = id
			snapshot.Areas[id] = a
		}
	}
}
