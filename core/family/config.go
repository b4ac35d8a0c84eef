package family

import "errors"

// Config holds the tunable weights of the family optimization score
// and the carpool surfacing threshold. Defaults are the reference
// values, kept as configuration on purpose. Fields are pointers so an
// explicit zero weight is distinguishable from unset.
type Config struct {
	ConflictPenalty     *int     `json:"conflict_penalty" yaml:"conflict_penalty"`
	OverloadPenalty     *int     `json:"overload_penalty" yaml:"overload_penalty"`
	SharedActivityBonus *int     `json:"shared_activity_bonus" yaml:"shared_activity_bonus"`
	FamilyTimeBonus     *int     `json:"family_time_bonus" yaml:"family_time_bonus"`
	CarpoolThreshold    *float64 `json:"carpool_threshold" yaml:"carpool_threshold"`
}

// SetDefaults fills unset fields with the reference weights.
func (c *Config) SetDefaults() {
	if c.ConflictPenalty == nil {
		c.ConflictPenalty = intp(5)
	}
	if c.OverloadPenalty == nil {
		c.OverloadPenalty = intp(10)
	}
	if c.SharedActivityBonus == nil {
		c.SharedActivityBonus = intp(5)
	}
	if c.FamilyTimeBonus == nil {
		c.FamilyTimeBonus = intp(3)
	}
	if c.CarpoolThreshold == nil {
		t := 0.7
		c.CarpoolThreshold = &t
	}
}

// Validate rejects weights that cannot produce a sane score. Unset
// fields are fine, they get the reference values later.
func (c Config) Validate() error {
	for _, p := range []*int{c.ConflictPenalty, c.OverloadPenalty, c.SharedActivityBonus, c.FamilyTimeBonus} {
		if p != nil && *p < 0 {
			return errors.New("family scoring weights must not be negative")
		}
	}
	if t := c.CarpoolThreshold; t != nil && (*t < 0 || *t > 1) {
		return errors.New("carpool threshold must be within [0,1]")
	}
	return nil
}

func intp(v int) *int { return &v }
