// Package icon resolves the icon, badge and light appearance of a card entity.
package icon

import "room-summary/internal/domain/model"

var hvacActionIcons = map[string]string{
	"cooling":    "mdi:snowflake",
	"defrosting": "mdi:snowflake-melt",
	"drying":     "mdi:water-percent",
	"fan":        "mdi:fan",
	"heating":    "mdi:fire",
	"idle":       "mdi:thermostat",
	"off":        "mdi:power",
	"preheating": "mdi:heat-wave",
}

var hvacModeIcons = map[string]string{
	"auto":      "mdi:thermostat-auto",
	"cool":      "mdi:snowflake",
	"dry":       "mdi:water-percent",
	"fan_only":  "mdi:fan",
	"heat":      "mdi:fire",
	"heat_cool": "mdi:sun-snowflake-variant",
	"off":       "mdi:power",
}

type Options struct {
	// ThresholdIcon comes from a matched threshold or badge rule.
	ThresholdIcon *string
}

// ComputeEntityIcon walks the priority chain: configured icon, threshold
// icon, climate hvac_action icon, climate hvac mode icon. The first defined
// value wins even when it is empty. The second result is false when the
// renderer should fall back to its own domain icon.
func ComputeEntityIcon(state model.EntityState, cfg *model.EntityConfig, flags model.Flags, opts Options) (string, bool) {
	if cfg != nil && cfg.Icon != nil {
		return *cfg.Icon, true
	}
	if opts.ThresholdIcon != nil {
		return *opts.ThresholdIcon, true
	}
	if state.Domain == "climate" && !flags.Has(model.FeatureSkipClimateStyles) {
		if icon, ok := hvacActionIcons[state.StringAttr("hvac_action")]; ok {
			return icon, true
		}
		if icon, ok := hvacModeIcons[state.State]; ok {
			return icon, true
		}
	}
	return "", false
}
