package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kmarens/famsched/core/model"
)

// dateLayout is the calendar-date format accepted in family files.
const dateLayout = "2006-01-02"

// FamilyFile is the on-disk family definition. Dates are strings here
// and converted exactly once at this boundary; the engine only ever
// sees the canonical representations.
type FamilyFile struct {
	Children []ChildRecord `json:"children"`
}

// ChildRecord mirrors model.ChildProfile with boundary-level types.
type ChildRecord struct {
	ID             string                         `json:"id"`
	Name           string                         `json:"name"`
	DateOfBirth    string                         `json:"date_of_birth"` // YYYY-MM-DD
	Routine        model.DailyRoutine             `json:"daily_routine"`
	SchoolSchedule map[string][]model.SchoolBlock `json:"school_schedule"`
	Activities     []ActivityRecord               `json:"weekly_activities"`
}

// ActivityRecord mirrors model.WeeklyActivity at the boundary.
type ActivityRecord struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Category    string                 `json:"category"`
	Location    model.ActivityLocation `json:"location"`
	Schedule    model.ActivitySchedule `json:"schedule"`
	Recurrence  RecurrenceRecord       `json:"recurrence"`
	Equipment   []string               `json:"equipment"`
	Preparation []string               `json:"preparation"`
	Contact     string                 `json:"contact"`
}

// RecurrenceRecord is the boundary form of a recurrence rule.
type RecurrenceRecord struct {
	Kind      string `json:"kind"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	MonthType string `json:"month_type"`
}

// LoadFamily reads a family definition file and converts it into
// engine profiles. Malformed per-child fields become diagnostics, not
// errors: a missing date of birth falls back to the assumed age group,
// a bad recurrence start date means the rule never occurs.
func LoadFamily(path string) ([]model.ChildProfile, model.Diagnostics, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, nil, fmt.Errorf("unsupported family file format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, nil, err
	}
	var ff FamilyFile
	if err := k.UnmarshalWithConf("", &ff, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, nil, err
	}
	return ff.Profiles()
}

// Profiles converts the file records into engine profiles plus the
// diagnostics collected while converting.
func (f FamilyFile) Profiles() ([]model.ChildProfile, model.Diagnostics, error) {
	var diags model.Diagnostics
	profiles := make([]model.ChildProfile, 0, len(f.Children))
	for _, rec := range f.Children {
		if rec.ID == "" {
			return nil, nil, fmt.Errorf("child %q has no id", rec.Name)
		}
		profiles = append(profiles, rec.profile(&diags))
	}
	return profiles, diags, nil
}

func (r ChildRecord) profile(diags *model.Diagnostics) model.ChildProfile {
	var dob time.Time
	if r.DateOfBirth != "" {
		parsed, err := time.Parse(dateLayout, r.DateOfBirth)
		if err != nil {
			diags.Addf(r.ID, "ingest", "date_of_birth", "assuming %s age group: %v", model.DefaultAgeGroup, err)
		} else {
			dob = parsed
		}
	}
	activities := make([]model.WeeklyActivity, 0, len(r.Activities))
	for _, a := range r.Activities {
		activities = append(activities, a.activity(r.ID, diags))
	}
	return model.ChildProfile{
		ID:             r.ID,
		Name:           r.Name,
		DateOfBirth:    dob,
		Routine:        r.Routine,
		SchoolSchedule: r.SchoolSchedule,
		Activities:     activities,
	}
}

func (a ActivityRecord) activity(childID string, diags *model.Diagnostics) model.WeeklyActivity {
	rule := model.RecurrenceRule{
		Kind:      model.RecurrenceKind(a.Recurrence.Kind),
		MonthType: a.Recurrence.MonthType,
	}
	if a.Recurrence.StartDate != "" {
		start, err := time.Parse(dateLayout, a.Recurrence.StartDate)
		if err != nil {
			diags.Addf(childID, "ingest", a.Name, "recurrence start date unreadable, rule will never occur: %v", err)
		} else {
			rule.StartDate = start
		}
	}
	if err := rule.Validate(); err != nil {
		diags.Addf(childID, "ingest", a.Name, "recurrence invalid, treating as weekly: %v", err)
		rule.Kind = model.RecurWeekly
	}
	return model.WeeklyActivity{
		ID:          a.ID,
		Name:        a.Name,
		Category:    a.Category,
		Location:    a.Location,
		Schedule:    a.Schedule,
		Recurrence:  rule,
		Equipment:   a.Equipment,
		Preparation: a.Preparation,
		Contact:     a.Contact,
	}
}
