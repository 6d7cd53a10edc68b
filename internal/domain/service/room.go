package service

import (
	"context"
	"fmt"

	"github.com/amimof/huego"
	"github.com/sirupsen/logrus"
	"room-summary/internal/domain/entity"
	"room-summary/internal/domain/icon"
	"room-summary/internal/domain/model"
	"room-summary/internal/domain/presence"
	"room-summary/internal/domain/sensor"
	"room-summary/internal/domain/threshold"
	"room-summary/internal/ports"
)

type EntityView struct {
	State     model.EntityState      `json:"state"`
	Label     string                 `json:"label,omitempty"`
	Active    bool                   `json:"active"`
	Icon      *string                `json:"icon,omitempty"`
	Threshold *model.ThresholdConfig `json:"threshold,omitempty"`
	Light     *huego.State           `json:"light,omitempty"`
}

type AveragedView struct {
	model.SensorGroup
	Display string `json:"display"`
}

type BadgeView struct {
	EntityID string             `json:"entity_id"`
	Position string             `json:"position,omitempty"`
	Mode     string             `json:"mode,omitempty"`
	Match    *model.StateConfig `json:"match,omitempty"`
}

// RoomSummary is the decision data handed to the renderer. Values returned by
// RoomService may be shared between callers and must not be mutated.
type RoomSummary struct {
	Area     string                 `json:"area"`
	AreaName string                 `json:"area_name,omitempty"`
	AreaIcon string                 `json:"area_icon,omitempty"`
	Room     *EntityView            `json:"room,omitempty"`
	Entities []EntityView           `json:"entities"`
	Sensors  []model.EntityState    `json:"sensors"`
	Averaged []AveragedView         `json:"averaged"`
	Climate  threshold.Result       `json:"climate"`
	Hit      threshold.Result       `json:"hit"`
	Occupied bool                   `json:"occupied"`
	Problems presence.ProblemResult `json:"problems"`
	Badges   []BadgeView            `json:"badges,omitempty"`
}

type RoomService struct {
	snapshots  ports.SnapshotSource
	thresholds *threshold.Factory
	cache      *Cache[*RoomSummary]
	logger     *logrus.Logger
}

func NewRoomService(snapshots ports.SnapshotSource, logger *logrus.Logger) *RoomService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &RoomService{
		snapshots:  snapshots,
		thresholds: threshold.NewFactory(),
		cache:      NewCache[*RoomSummary](),
		logger:     logger,
	}
}

// Summarize fetches a snapshot and evaluates the card against it. An absent
// config or snapshot yields an empty summary; only a failing source errors.
func (s *RoomService) Summarize(ctx context.Context, cfg *model.Config) (*RoomSummary, error) {
	if cfg == nil {
		s.logger.Debug("no card configured, nothing to show")
		return &RoomSummary{}, nil
	}
	snapshot, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot for area %s: %w", cfg.Area, err)
	}
	if snapshot == nil {
		s.logger.WithField("area", cfg.Area).Debug("empty snapshot, nothing to show")
		return &RoomSummary{Area: cfg.Area}, nil
	}
	return s.Evaluate(snapshot, cfg), nil
}

// Evaluate runs the pipeline, reusing the last result for the area when the
// snapshot and config hash to the same content.
func (s *RoomService) Evaluate(snapshot *model.Snapshot, cfg *model.Config) *RoomSummary {
	log := s.logger.WithField("area", cfg.Area)

	hash, err := ContentHash(struct {
		Snapshot *model.Snapshot
		Config   *model.Config
	}{snapshot, cfg})
	if err != nil {
		log.WithError(err).Warn("cannot hash inputs, skipping cache")
		return s.compute(snapshot, cfg)
	}
	if cached, ok := s.cache.Get(cfg.Area, hash); ok {
		log.Debug("room summary cache hit")
		return cached
	}

	summary := s.compute(snapshot, cfg)
	s.cache.Put(cfg.Area, hash, summary)
	log.WithFields(logrus.Fields{
		"sensors":  len(summary.Sensors),
		"averaged": len(summary.Averaged),
		"hot":      summary.Climate.Hot,
		"humid":    summary.Climate.Humid,
		"problems": len(summary.Problems.ProblemEntities),
	}).Debug("room summary computed")
	return summary
}

func (s *RoomService) compute(snapshot *model.Snapshot, cfg *model.Config) *RoomSummary {
	flags := model.FlagsOf(cfg)
	summary := &RoomSummary{Area: cfg.Area}
	if area := entity.Area(snapshot, cfg.Area); area != nil {
		summary.AreaName = area.Name
		summary.AreaIcon = area.Icon
	}

	summary.Sensors = sensor.GetSensors(snapshot, cfg)
	groups := sensor.CalculateAverages(sensor.ClassSensors(snapshot, cfg), cfg.ClassList())
	for _, g := range groups {
		summary.Averaged = append(summary.Averaged, AveragedView{SensorGroup: g, Display: sensor.FormatAverage(g)})
	}

	in := threshold.Input{
		Thresholds: cfg.Thresholds,
		Flags:      flags,
		Groups:     groups,
		Sensors:    summary.Sensors,
	}
	summary.Climate = s.thresholds.GetStrategy(threshold.ConfigOverrideThreshold).Evaluate(in)
	summary.Hit = s.thresholds.GetStrategy(threshold.AttributeCarriedThreshold).Evaluate(in)

	roomCfg := model.EntityConfig{}
	if cfg.Entity != nil {
		roomCfg = *cfg.Entity
	}
	roomCfg.EntityID = entity.RoomEntityID(cfg)
	room := s.entityView(entity.GetStateOrPlaceholder(snapshot, roomCfg.EntityID), &roomCfg, flags)
	summary.Room = &room

	for _, ecfg := range entity.DefaultEntities(cfg, flags) {
		state, ok := entity.GetState(snapshot, ecfg.EntityID)
		if !ok {
			s.logger.WithField("entity_id", ecfg.EntityID).Debug("entity missing from snapshot")
			continue
		}
		summary.Entities = append(summary.Entities, s.entityView(state, &ecfg, flags))
	}

	for _, badge := range cfg.Badges {
		view := BadgeView{EntityID: badge.EntityID, Position: badge.Position, Mode: badge.Mode}
		if view.EntityID == "" {
			view.EntityID = roomCfg.EntityID
		}
		if state, ok := entity.GetState(snapshot, view.EntityID); ok {
			if match, ok := icon.GetMatchingBadgeState(state, badge); ok {
				view.Match = &match
			}
		}
		summary.Badges = append(summary.Badges, view)
	}

	summary.Occupied = presence.GetOccupancyState(snapshot, cfg.Occupancy)
	summary.Problems = presence.GetProblemEntities(snapshot, cfg.Area)
	return summary
}

func (s *RoomService) entityView(state model.EntityState, cfg *model.EntityConfig, flags model.Flags) EntityView {
	view := EntityView{
		State:  state,
		Label:  cfg.Label,
		Active: entity.IsActive(state),
		Light:  icon.LightAppearance(state),
	}
	if view.Label == "" {
		view.Label = state.StringAttr("friendly_name")
	}

	var opts icon.Options
	if rule, ok := threshold.MatchEntityThreshold(state, cfg.Thresholds); ok {
		view.Threshold = &rule
		opts.ThresholdIcon = rule.Icon
	}
	if name, ok := icon.ComputeEntityIcon(state, cfg, flags, opts); ok {
		view.Icon = &name
	}
	return view
}
