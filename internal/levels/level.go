// Package levels provides YAML puzzle file loading and writing.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	"fmt"

	"github.com/EngEryx/tubesort/internal/engine"
)

// Level is a complete puzzle definition as stored on disk.
type Level struct {
	ID         string
	Name       string
	Difficulty string
	Capacity   int
	Containers []ContainerSpec
	MoveLimit  int
	Stars      [3]int
	Optimal    int // Optimal move count recorded at generation time, 0 if unknown
	Seed       uint64
	Metadata   map[string]string
	FilePath   string
}

// ContainerSpec is one container entry in a level file.
type ContainerSpec struct {
	ID     string
	Colors []engine.Color // Bottom to top
}

// ToDefinition converts the level into an engine puzzle definition.
func (l *Level) ToDefinition() (*engine.Definition, error) {
	containers := make([]engine.Container, 0, len(l.Containers))
	for _, spec := range l.Containers {
		c, err := engine.NewContainer(spec.ID, spec.Colors, l.Capacity)
		if err != nil {
			return nil, fmt.Errorf("levels: container %q: %w", spec.ID, err)
		}
		containers = append(containers, c)
	}
	return &engine.Definition{
		ID:             l.ID,
		Name:           l.Name,
		Capacity:       l.Capacity,
		Containers:     containers,
		MoveLimit:      l.MoveLimit,
		StarThresholds: l.Stars,
	}, nil
}

// NewState builds the initial puzzle state for this level.
func (l *Level) NewState() (engine.PuzzleState, error) {
	def, err := l.ToDefinition()
	if err != nil {
		return engine.PuzzleState{}, err
	}
	return engine.NewState(def)
}

// FromState captures a puzzle state's containers as a level. Used by the
// generator pipeline to export accepted puzzles.
func FromState(id, name, difficulty string, state engine.PuzzleState) Level {
	def := state.Definition()
	containers := make([]ContainerSpec, 0, len(state.Containers()))
	capacity := def.Capacity
	for _, c := range state.Containers() {
		containers = append(containers, ContainerSpec{
			ID:     c.ID,
			Colors: c.Colors(),
		})
		if c.Capacity > capacity {
			capacity = c.Capacity
		}
	}
	return Level{
		ID:         id,
		Name:       name,
		Difficulty: difficulty,
		Capacity:   capacity,
		Containers: containers,
		MoveLimit:  def.MoveLimit,
		Stars:      def.StarThresholds,
	}
}
