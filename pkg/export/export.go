// Package export serializes family plans for UI rendering and
// persistence write-back.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kmarens/famsched/core/model"
)

// WriteJSON writes the full family plan to w in JSON format.
func WriteJSON(w io.Writer, plan model.FamilyPlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

// WriteCSV writes one row per scheduled event across all children.
func WriteCSV(w io.Writer, plan model.FamilyPlan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"child_id", "day", "date", "start", "end", "title", "type", "priority", "fixed"}); err != nil {
		return err
	}
	for _, child := range plan.Children {
		for _, day := range model.WeekDays {
			ds := child.Week.Day(day)
			if ds == nil {
				continue
			}
			for _, ev := range ds.Events {
				rec := []string{
					child.ChildID,
					model.WeekdayKey(day),
					ds.Date.Format("2006-01-02"),
					ev.Start.String(),
					ev.End.String(),
					ev.Title,
					string(ev.Type),
					strconv.Itoa(int(ev.Priority)),
					strconv.FormatBool(ev.IsFixed),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
