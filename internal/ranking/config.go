package ranking

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Partition is the canonical best-to-worst list for one year, plus
// overrides that apply to that year only.
type Partition struct {
	Ranks     []string          `yaml:"ranks"`
	Overrides map[string]string `yaml:"overrides"`
}

// Config is the hand-maintained rankings file. Overrides map a display
// name to the literal stored name and apply to every year unless a
// partition overrides the same display name.
type Config struct {
	Overrides map[string]string `yaml:"overrides"`
	Years     map[int]Partition `yaml:"years"`
}

// LoadConfig reads and validates a rankings YAML file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindConfig, Msg: "read " + path, Err: err}
	}
	return ParseConfig(b)
}

func ParseConfig(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, &Error{Kind: KindConfig, Msg: "decode rankings", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Kind: KindConfig, Msg: "invalid rankings", Err: err}
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	for year, p := range c.Years {
		if year < 2000 || year > 2100 {
			return fmt.Errorf("year %d out of range", year)
		}
		for i, name := range p.Ranks {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("year %d: empty name at rank %d", year, i+1)
			}
		}
	}
	return nil
}

// SortedYears returns the configured years ascending.
func (c *Config) SortedYears() []int {
	years := make([]int, 0, len(c.Years))
	for y := range c.Years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// OverridesFor merges the global overrides with the year's own.
func (c *Config) OverridesFor(year int) map[string]string {
	out := make(map[string]string, len(c.Overrides))
	for k, v := range c.Overrides {
		out[k] = v
	}
	for k, v := range c.Years[year].Overrides {
		out[k] = v
	}
	return out
}
