package family

import (
	"fmt"
	"sort"

	"github.com/kmarens/famsched/core/model"
)

// minFamilyTimeSlots below which protecting family time is recommended.
const minFamilyTimeSlots = 3

// referenceCategories every balanced week should touch.
var referenceCategories = []string{"physical", "creative", "social", "educational", "outdoor"}

// Recommendations derives ranked family-level advice from the other
// optimization outputs. The result is sorted by priority descending,
// stable within equal priorities.
func Recommendations(children []ChildWeek, shared []model.SharedActivity, carpool []model.CarpoolOption, familyTime []model.FamilyTimeSlot) []model.Recommendation {
	var out []model.Recommendation
	if len(carpool) > 0 {
		out = append(out, model.Recommendation{
			Type:     model.RecommendTransportation,
			Priority: model.SeverityHigh,
			Message:  fmt.Sprintf("%d activities are good carpool candidates, coordinate rides with other families", len(carpool)),
		})
	}
	if overloadedAnywhere(children) {
		out = append(out, model.Recommendation{
			Type:     model.RecommendBalance,
			Priority: model.SeverityMedium,
			Message:  "at least one day is overloaded, redistribute activities across the week",
		})
	}
	if len(familyTime) < minFamilyTimeSlots {
		out = append(out, model.Recommendation{
			Type:     model.RecommendFamilyTime,
			Priority: model.SeverityHigh,
			Message:  "fewer than three shared free windows this week, protect time together",
		})
	}
	if missing := missingCategories(children); len(missing) > 0 {
		out = append(out, model.Recommendation{
			Type:     model.RecommendDiversity,
			Priority: model.SeverityMedium,
			Message:  fmt.Sprintf("no %v activities this week, consider adding variety", missing),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() > out[j].Priority.Rank()
	})
	return out
}

func overloadedAnywhere(children []ChildWeek) bool {
	for _, cw := range children {
		if cw.Plan.Metadata.OverloadedDays > 0 {
			return true
		}
	}
	return false
}

// missingCategories lists reference categories absent from every
// child's week.
func missingCategories(children []ChildWeek) []string {
	present := make(map[string]bool)
	for _, cw := range children {
		for _, day := range cw.Plan.Week {
			for _, ev := range day.Events {
				if ev.Type == model.EventActivity {
					present[ev.Category] = true
				}
			}
		}
	}
	var missing []string
	for _, cat := range referenceCategories {
		if !present[cat] {
			missing = append(missing, cat)
		}
	}
	return missing
}
