package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/EngEryx/tubesort/internal/engine"
)

// yamlLevel is the YAML structure of a level file.
type yamlLevel struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name,omitempty"`
	Difficulty string            `yaml:"difficulty,omitempty"`
	Capacity   int               `yaml:"capacity"`
	MoveLimit  int               `yaml:"move_limit,omitempty"`
	Stars      []int             `yaml:"stars,omitempty"`
	Optimal    int               `yaml:"optimal_moves,omitempty"`
	Seed       uint64            `yaml:"seed,omitempty"`
	Containers []yamlContainer   `yaml:"containers"`
	Metadata   map[string]string `yaml:"metadata,omitempty"`
}

// yamlContainer is one container entry: colors bottom to top, by name.
type yamlContainer struct {
	ID     string   `yaml:"id"`
	Colors []string `yaml:"colors"`
}

// ParseYAML decodes and validates a level file.
func ParseYAML(data []byte) (Level, error) {
	var raw yamlLevel
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Level{}, fmt.Errorf("levels: invalid YAML: %w", err)
	}

	if raw.ID == "" {
		return Level{}, fmt.Errorf("levels: missing id")
	}
	if raw.Capacity < 1 {
		return Level{}, fmt.Errorf("levels: level %s: capacity must be positive", raw.ID)
	}
	if len(raw.Containers) < 2 {
		return Level{}, fmt.Errorf("levels: level %s: need at least 2 containers", raw.ID)
	}
	if len(raw.Stars) != 0 && len(raw.Stars) != 3 {
		return Level{}, fmt.Errorf("levels: level %s: stars must have exactly 3 entries", raw.ID)
	}

	lvl := Level{
		ID:         raw.ID,
		Name:       raw.Name,
		Difficulty: raw.Difficulty,
		Capacity:   raw.Capacity,
		MoveLimit:  raw.MoveLimit,
		Optimal:    raw.Optimal,
		Seed:       raw.Seed,
		Metadata:   raw.Metadata,
	}
	copy(lvl.Stars[:], raw.Stars)

	seen := make(map[string]struct{}, len(raw.Containers))
	for _, rc := range raw.Containers {
		if rc.ID == "" {
			return Level{}, fmt.Errorf("levels: level %s: container without id", raw.ID)
		}
		if _, dup := seen[rc.ID]; dup {
			return Level{}, fmt.Errorf("levels: level %s: duplicate container id %q", raw.ID, rc.ID)
		}
		seen[rc.ID] = struct{}{}
		if len(rc.Colors) > raw.Capacity {
			return Level{}, fmt.Errorf("levels: level %s: container %q exceeds capacity %d", raw.ID, rc.ID, raw.Capacity)
		}

		colors := make([]engine.Color, 0, len(rc.Colors))
		for _, name := range rc.Colors {
			c, ok := engine.ParseColor(name)
			if !ok {
				return Level{}, fmt.Errorf("levels: level %s: container %q has unknown color %q", raw.ID, rc.ID, name)
			}
			colors = append(colors, c)
		}
		lvl.Containers = append(lvl.Containers, ContainerSpec{ID: rc.ID, Colors: colors})
	}

	return lvl, nil
}

// EncodeYAML renders a level as a YAML document.
func EncodeYAML(lvl Level) ([]byte, error) {
	raw := yamlLevel{
		ID:         lvl.ID,
		Name:       lvl.Name,
		Difficulty: lvl.Difficulty,
		Capacity:   lvl.Capacity,
		MoveLimit:  lvl.MoveLimit,
		Optimal:    lvl.Optimal,
		Seed:       lvl.Seed,
		Metadata:   lvl.Metadata,
	}
	if lvl.Stars != [3]int{} {
		raw.Stars = lvl.Stars[:]
	}
	for _, c := range lvl.Containers {
		names := make([]string, len(c.Colors))
		for i, col := range c.Colors {
			names[i] = col.String()
		}
		raw.Containers = append(raw.Containers, yamlContainer{ID: c.ID, Colors: names})
	}

	data, err := yaml.Marshal(&raw)
	if err != nil {
		return nil, fmt.Errorf("levels: cannot encode level %s: %w", lvl.ID, err)
	}
	return data, nil
}
