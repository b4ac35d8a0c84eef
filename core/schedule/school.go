package schedule

import (
	"github.com/google/uuid"

	"github.com/kmarens/famsched/core/model"
)

// defaultSchoolTravelMin applies when a block carries no travel time.
const defaultSchoolTravelMin = 15

var schoolPreparation = map[string][]string{
	"school":       {"school bag", "lunch box", "water bottle"},
	"kindergarten": {"change of clothes", "water bottle"},
	"after_school": {"snack", "pickup note"},
}

// BuildSchoolEvents expands one weekday's school blocks into fixed
// essential events. No blocks for the day is not an error.
func BuildSchoolEvents(childID string, blocks []model.SchoolBlock, diags *model.Diagnostics) []model.Event {
	var events []model.Event
	for _, block := range blocks {
		start, err := model.ParseClock(block.StartTime)
		if err != nil {
			diags.Addf(childID, "school", block.StartTime, "skipping school block: %v", err)
			continue
		}
		end, err := model.ParseClock(block.EndTime)
		if err != nil {
			diags.Addf(childID, "school", block.EndTime, "skipping school block: %v", err)
			continue
		}
		if end <= start {
			diags.Addf(childID, "school", block.StartTime, "skipping school block: end %s not after start %s", end, start)
			continue
		}
		travel := block.TravelMin
		if travel == 0 {
			travel = defaultSchoolTravelMin
		}
		blockType := block.BlockType
		if blockType == "" {
			blockType = "school"
		}
		events = append(events, model.Event{
			ID:          uuid.NewString(),
			Title:       "School",
			Type:        model.EventSchool,
			Start:       start,
			End:         end,
			Priority:    model.PriorityEssential,
			IsFixed:     true,
			Category:    blockType,
			TravelMin:   travel,
			Preparation: schoolPreparation[blockType],
		})
	}
	return events
}
