package model

import "github.com/samber/lo"

type Feature string

const (
	FeatureExcludeDefaultEntities Feature = "exclude_default_entities"
	FeatureSkipClimateStyles      Feature = "skip_climate_styles"
	FeatureSkipEntityStyles       Feature = "skip_entity_styles"
	FeatureHideClimateLabel       Feature = "hide_climate_label"
	FeatureHideAreaStats          Feature = "hide_area_stats"
	FeatureHideRoomIcon           Feature = "hide_room_icon"
	FeatureHideSensorIcons        Feature = "hide_sensor_icons"
	FeatureShowEntityLabels       Feature = "show_entity_labels"
)

// Flags is the set of feature tokens a card or entity was configured with.
//
// A Flags value built from an absent configuration reports every feature as
// set. This mirrors the host card, where a missing config short-circuits the
// check to true, and is kept as-is until that behaviour is confirmed.
type Flags struct {
	absent bool
	set    []string
}

func NewFlags(features ...string) Flags {
	return Flags{set: lo.Uniq(features)}
}

func FlagsOf(cfg *Config) Flags {
	if cfg == nil {
		return Flags{absent: true}
	}
	return NewFlags(cfg.Features...)
}

// EntityFlagsOf has no absent-config quirk: an unconfigured entity has no features.
func EntityFlagsOf(cfg *EntityConfig) Flags {
	if cfg == nil {
		return Flags{}
	}
	return NewFlags(cfg.Features...)
}

func (f Flags) Has(feature Feature) bool {
	return f.absent || lo.Contains(f.set, string(feature))
}
