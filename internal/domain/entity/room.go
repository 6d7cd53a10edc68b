package entity

import (
	"github.com/samber/lo"
	"room-summary/internal/domain/model"
)

// RoomEntityID is the card's primary entity, defaulting to the area light.
func RoomEntityID(cfg *model.Config) string {
	if cfg == nil {
		return ""
	}
	if cfg.Entity != nil && cfg.Entity.EntityID != "" {
		return cfg.Entity.EntityID
	}
	return "light." + cfg.Area + "_light"
}

// DefaultEntities lists the control entities for the card: the area light and
// fan unless excluded, then the configured entities. Ids are deduplicated,
// keeping the first occurrence.
func DefaultEntities(cfg *model.Config, flags model.Flags) []model.EntityConfig {
	if cfg == nil {
		return nil
	}
	var entities []model.EntityConfig
	if !flags.Has(model.FeatureExcludeDefaultEntities) {
		entities = append(entities,
			model.EntityConfig{EntityID: "light." + cfg.Area + "_light"},
			model.EntityConfig{EntityID: "switch." + cfg.Area + "_fan"},
		)
	}
	entities = append(entities, cfg.Entities...)

	// A configured entry replaces a default one with the same id.
	configured := lo.Associate(cfg.Entities, func(e model.EntityConfig) (string, model.EntityConfig) {
		return e.EntityID, e
	})
	entities = lo.UniqBy(entities, func(e model.EntityConfig) string { return e.EntityID })
	return lo.Map(entities, func(e model.EntityConfig, _ int) model.EntityConfig {
		if c, ok := configured[e.EntityID]; ok {
			return c
		}
		return e
	})
}
