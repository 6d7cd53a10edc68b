// Package threshold derives the climate flags of a room card.
//
// Two independent strategies exist and are deliberately not unified:
// ConfigOverrideThreshold reads limits from the card configuration and values
// from the aggregated sensor groups; AttributeCarriedThreshold reads limits
// from attributes carried on the temperature sensor itself.
package threshold

import "room-summary/internal/domain/model"

const (
	DefaultTemperatureThreshold = 80.0
	DefaultHumidityThreshold    = 60.0
)

type StrategyKind string

const (
	ConfigOverrideThreshold   StrategyKind = "config_override"
	AttributeCarriedThreshold StrategyKind = "attribute_carried"
)

// Input carries everything either strategy may read.
type Input struct {
	Thresholds *model.ThresholdsConfig
	Flags      model.Flags
	Groups     []model.SensorGroup
	Sensors    []model.EntityState
}

// Result is the strategy-neutral view of the climate flags.
type Result struct {
	Kind  StrategyKind `json:"kind"`
	Hot   bool         `json:"hot"`
	Humid bool         `json:"humid"`
}

type Strategy interface {
	Kind() StrategyKind
	Evaluate(in Input) Result
}

type ConfigOverrideStrategy struct{}

func (s *ConfigOverrideStrategy) Kind() StrategyKind { return ConfigOverrideThreshold }

func (s *ConfigOverrideStrategy) Evaluate(in Input) Result {
	r := ClimateThresholds(in.Thresholds, in.Flags, in.Groups)
	return Result{Kind: s.Kind(), Hot: r.Hot, Humid: r.Humid}
}

type AttributeCarriedStrategy struct{}

func (s *AttributeCarriedStrategy) Kind() StrategyKind { return AttributeCarriedThreshold }

func (s *AttributeCarriedStrategy) Evaluate(in Input) Result {
	r := HitThresholds(in.Flags, in.Sensors)
	return Result{Kind: s.Kind(), Hot: r.OverTemp, Humid: r.OverHumid}
}
