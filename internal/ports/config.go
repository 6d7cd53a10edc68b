package ports

import (
	"context"

	"room-summary/internal/domain/model"
)

// CardConfigRepository loads the card configuration. A nil config with a nil
// error means no card is configured.
type CardConfigRepository interface {
	Get(ctx context.Context) (*model.Config, error)
}
