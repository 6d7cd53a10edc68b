// Package presence derives the occupancy and problem indicators of a room.
package presence

import (
	"slices"

	"github.com/samber/lo"
	"room-summary/internal/domain/entity"
	"room-summary/internal/domain/model"
)

const ProblemLabel = "problem"

type ProblemResult struct {
	ProblemEntities []string `json:"problem_entities"`
	ProblemExists   bool     `json:"problem_exists"`
}

// GetOccupancyState is true when any configured occupancy entity is active.
// Entities missing from the snapshot count as inactive.
func GetOccupancyState(snapshot *model.Snapshot, occupancy *model.OccupancyConfig) bool {
	if snapshot == nil || occupancy == nil {
		return false
	}
	return lo.SomeBy(occupancy.Entities, func(id string) bool {
		state, ok := entity.GetState(snapshot, id)
		return ok && entity.IsActive(state)
	})
}

// GetProblemEntities collects the ids labelled "problem" in the area, sorted,
// and reports whether any of them is active.
func GetProblemEntities(snapshot *model.Snapshot, area string) ProblemResult {
	if snapshot == nil {
		return ProblemResult{}
	}
	ids := lo.Filter(lo.Keys(snapshot.Entities), func(id string, _ int) bool {
		return entity.HasLabel(snapshot, id, ProblemLabel) && entity.InArea(snapshot, id, area)
	})
	slices.Sort(ids)

	return ProblemResult{
		ProblemEntities: ids,
		ProblemExists: lo.SomeBy(ids, func(id string) bool {
			state, ok := entity.GetState(snapshot, id)
			return ok && entity.IsActive(state)
		}),
	}
}
