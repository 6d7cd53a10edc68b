package ports

import (
	"context"

	"room-summary/internal/domain/model"
)

// SnapshotSource provides a read-only snapshot of the host state store and
// registries.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*model.Snapshot, error)
}
