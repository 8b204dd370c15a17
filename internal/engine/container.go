package engine

// Container is a fixed-capacity ordered stack of colored units (a "tube").
// Colors are stored bottom to top. A Container is an immutable value: every
// transformation returns a new Container and never mutates the receiver.
// The backing color slice is shared between derived containers, so untouched
// containers cost nothing to carry into a new state.
type Container struct {
	// ID addresses the container inside a state. It is stable for the
	// lifetime of the puzzle and unique within a state.
	ID string

	// Capacity is the maximum number of units the container can hold.
	Capacity int

	colors []Color
}

// NewEmptyContainer creates a container with no contents.
func NewEmptyContainer(id string, capacity int) Container {
	return Container{ID: id, Capacity: capacity}
}

// NewContainer creates a container pre-filled with the given colors,
// bottom to top. Fails with ErrCapacityExceeded if the colors do not fit.
func NewContainer(id string, colors []Color, capacity int) (Container, error) {
	if len(colors) > capacity {
		return Container{}, ErrCapacityExceeded
	}
	c := Container{ID: id, Capacity: capacity}
	if len(colors) > 0 {
		c.colors = make([]Color, len(colors))
		copy(c.colors, colors)
	}
	return c, nil
}

// Len returns the number of units currently in the container.
func (c Container) Len() int {
	return len(c.colors)
}

// IsEmpty returns true if the container holds no units.
func (c Container) IsEmpty() bool {
	return len(c.colors) == 0
}

// IsFull returns true if the container is at capacity.
func (c Container) IsFull() bool {
	return len(c.colors) == c.Capacity
}

// IsSolved returns true if the container is empty, or full of a single color.
func (c Container) IsSolved() bool {
	if c.IsEmpty() {
		return true
	}
	if !c.IsFull() {
		return false
	}
	first := c.colors[0]
	for _, col := range c.colors[1:] {
		if col != first {
			return false
		}
	}
	return true
}

// TopColor returns the topmost color. ok is false when the container is empty.
func (c Container) TopColor() (color Color, ok bool) {
	if len(c.colors) == 0 {
		return 0, false
	}
	return c.colors[len(c.colors)-1], true
}

// TopRun returns the length of the contiguous run of identical colors at
// the top of the container. Zero for an empty container.
func (c Container) TopRun() int {
	n := len(c.colors)
	if n == 0 {
		return 0
	}
	top := c.colors[n-1]
	run := 1
	for i := n - 2; i >= 0 && c.colors[i] == top; i-- {
		run++
	}
	return run
}

// FreeSpace returns how many more units the container can accept.
func (c Container) FreeSpace() int {
	return c.Capacity - len(c.colors)
}

// Colors returns a copy of the contents, bottom to top.
func (c Container) Colors() []Color {
	out := make([]Color, len(c.colors))
	copy(out, c.colors)
	return out
}

// ColorAt returns the color at index i (0 = bottom). ok is false when the
// index is out of range.
func (c Container) ColorAt(i int) (Color, bool) {
	if i < 0 || i >= len(c.colors) {
		return 0, false
	}
	return c.colors[i], true
}

// Add returns a new container with the colors appended on top.
// Capacity is not checked here; callers validate fit via FreeSpace first.
func (c Container) Add(colors ...Color) Container {
	merged := make([]Color, 0, len(c.colors)+len(colors))
	merged = append(merged, c.colors...)
	merged = append(merged, colors...)
	return Container{ID: c.ID, Capacity: c.Capacity, colors: merged}
}

// RemoveTop returns a new container with the top n units removed.
// Fails with ErrInsufficientColors if n exceeds the current length.
func (c Container) RemoveTop(n int) (Container, error) {
	if n > len(c.colors) {
		return Container{}, ErrInsufficientColors
	}
	return Container{
		ID:       c.ID,
		Capacity: c.Capacity,
		colors:   c.colors[:len(c.colors)-n],
	}, nil
}

// Equal reports value equality: same id, capacity, and exact color sequence.
func (c Container) Equal(other Container) bool {
	if c.ID != other.ID || c.Capacity != other.Capacity || len(c.colors) != len(other.colors) {
		return false
	}
	for i, col := range c.colors {
		if col != other.colors[i] {
			return false
		}
	}
	return true
}

// String renders the container contents bottom to top, one rune per color.
func (c Container) String() string {
	runes := make([]rune, len(c.colors))
	for i, col := range c.colors {
		runes[i] = col.Rune()
	}
	return c.ID + ":[" + string(runes) + "]"
}
