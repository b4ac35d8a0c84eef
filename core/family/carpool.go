package family

import "github.com/kmarens/famsched/core/model"

const (
	carpoolBaseScore       = 0.5
	carpoolTravelBonus     = 0.2 // location further than 20 minutes away
	carpoolFrequencyBonus  = 0.1 // scheduled on more than two days
	carpoolTravelThreshold = 20  // minutes
	carpoolCostSavedPct    = 25
)

// CarpoolOptions scores every configured weekly activity with a known
// location and surfaces those scoring strictly above the threshold.
// Scores always land in [0,1].
func CarpoolOptions(children []ChildWeek, threshold float64) []model.CarpoolOption {
	var out []model.CarpoolOption
	for _, cw := range children {
		for _, act := range cw.Profile.Activities {
			if act.Location.Name == "" || len(act.Schedule.Days) == 0 {
				continue
			}
			score := carpoolBaseScore
			if act.Location.TravelMin > carpoolTravelThreshold {
				score += carpoolTravelBonus
			}
			if len(act.Schedule.Days) > 2 {
				score += carpoolFrequencyBonus
			}
			if score <= threshold {
				continue
			}
			out = append(out, model.CarpoolOption{
				ChildID:          cw.Profile.ID,
				ActivityID:       act.ID,
				ActivityName:     act.Name,
				Location:         act.Location.Name,
				DaysPerWeek:      len(act.Schedule.Days),
				Score:            score,
				TimeSavedMin:     act.Location.TravelMin / 2,
				CostSavedPercent: carpoolCostSavedPct,
				StressReduction:  "one less trip per session for the driving parent",
			})
		}
	}
	return out
}
