package metrics

// PrometheusConfig controls the optional Prometheus exposition.
type PrometheusConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Listen  string `json:"listen" yaml:"listen"`
}

// Config selects the metrics backends to enable.
type Config struct {
	Prometheus PrometheusConfig `json:"prometheus" yaml:"prometheus"`
}

// SetDefaults applies the default listen address.
func (c *Config) SetDefaults() {
	if c.Prometheus.Listen == "" {
		c.Prometheus.Listen = ":9090"
	}
}
