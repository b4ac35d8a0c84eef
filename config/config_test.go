package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmarens/famsched/core/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
logging:
  level: debug
scoring:
  conflict_penalty: 20
day_window:
  start: "06:30"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 20, *cfg.Scoring.ConflictPenalty)
	// Unset fields fall back to the reference values.
	assert.Equal(t, 15, *cfg.Scoring.OverloadPenalty)
	assert.Equal(t, 0.7, *cfg.Family.CarpoolThreshold)
	assert.Equal(t, "06:30", cfg.DayWindow.Start)
	assert.Equal(t, "20:00", cfg.DayWindow.End)
}

func TestLoadZeroWeightSurvives(t *testing.T) {
	path := writeFile(t, "config.yaml", `
scoring:
  even_free_time_bonus: 0
family:
  family_time_bonus: 0
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	// An explicit zero is a real setting, not a request for defaults.
	assert.Equal(t, 0, *cfg.Scoring.EvenFreeTimeBonus)
	assert.Equal(t, 0, *cfg.Family.FamilyTimeBonus)
	assert.Equal(t, 10, *cfg.Scoring.ConflictPenalty)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeFile(t, "config.toml", "x = 1")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsBadWindow(t *testing.T) {
	path := writeFile(t, "config.yaml", `
day_window:
  start: "21:00"
  end: "07:00"
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsBadLevel(t *testing.T) {
	path := writeFile(t, "config.yaml", "logging:\n  level: loud\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	window, err := cfg.DayWindow.Window()
	require.NoError(t, err)
	assert.Equal(t, model.ClockMinutes(7*60), window.Start)
	assert.Equal(t, model.ClockMinutes(20*60), window.End)
}

func TestLoadFamilyYAML(t *testing.T) {
	path := writeFile(t, "family.yaml", `
children:
  - id: emma
    name: Emma
    date_of_birth: "2019-05-10"
    daily_routine:
      wake_up_time: "07:00"
      breakfast: "08:00"
    school_schedule:
      monday:
        - start_time: "09:00"
          end_time: "15:00"
    weekly_activities:
      - id: soccer
        name: Soccer
        category: physical
        location:
          name: City Sports Park
          travel_minutes: 10
        schedule:
          days: [monday, wednesday]
          start_time: "16:00"
          duration_minutes: 60
        recurrence:
          kind: biweekly
          start_date: "2025-01-06"
`)
	children, diags, err := LoadFamily(path)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Empty(t, diags)

	emma := children[0]
	assert.Equal(t, "emma", emma.ID)
	assert.Equal(t, 2019, emma.DateOfBirth.Year())
	require.Len(t, emma.Activities, 1)
	soccer := emma.Activities[0]
	assert.Equal(t, model.RecurBiweekly, soccer.Recurrence.Kind)
	assert.Equal(t, 6, soccer.Recurrence.StartDate.Day())
}

func TestLoadFamilyBadDatesBecomeDiagnostics(t *testing.T) {
	path := writeFile(t, "family.json", `{
  "children": [
    {
      "id": "liam",
      "name": "Liam",
      "date_of_birth": "spring 2019",
      "weekly_activities": [
        {
          "id": "swim",
          "name": "Swimming",
          "schedule": {"days": ["tuesday"], "start_time": "17:00", "duration_minutes": 45},
          "recurrence": {"kind": "biweekly", "start_date": "someday"}
        }
      ]
    }
  ]
}`)
	children, diags, err := LoadFamily(path)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Len(t, diags, 2)
	assert.True(t, children[0].DateOfBirth.IsZero())
	assert.True(t, children[0].Activities[0].Recurrence.StartDate.IsZero())
}

func TestLoadFamilyMissingIDIsError(t *testing.T) {
	path := writeFile(t, "family.yaml", "children:\n  - name: Nameless\n")
	_, _, err := LoadFamily(path)
	require.Error(t, err)
}
