package engine

import (
	"errors"
	"testing"
)

func TestNewContainerCapacityCheck(t *testing.T) {
	_, err := NewContainer("A", []Color{ColorRed, ColorBlue, ColorRed}, 2)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	c, err := NewContainer("A", []Color{ColorRed, ColorBlue}, 2)
	if err != nil {
		t.Fatalf("NewContainer failed: %v", err)
	}
	if c.Len() != 2 || !c.IsFull() {
		t.Errorf("expected full container of 2, got len %d", c.Len())
	}
}

func TestContainerDerivedProperties(t *testing.T) {
	tests := []struct {
		name     string
		colors   []Color
		capacity int
		empty    bool
		full     bool
		solved   bool
		topRun   int
		space    int
	}{
		{"empty", nil, 4, true, false, true, 0, 4},
		{"partial mixed", []Color{ColorRed, ColorBlue}, 4, false, false, false, 1, 2},
		{"full single color", []Color{ColorRed, ColorRed, ColorRed, ColorRed}, 4, false, true, true, 4, 0},
		{"full mixed", []Color{ColorRed, ColorBlue, ColorBlue, ColorBlue}, 4, false, true, false, 3, 0},
		{"partial single", []Color{ColorGreen, ColorGreen}, 4, false, false, false, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer("X", tt.colors, tt.capacity)
			if err != nil {
				t.Fatalf("NewContainer failed: %v", err)
			}
			if c.IsEmpty() != tt.empty {
				t.Errorf("IsEmpty = %v, want %v", c.IsEmpty(), tt.empty)
			}
			if c.IsFull() != tt.full {
				t.Errorf("IsFull = %v, want %v", c.IsFull(), tt.full)
			}
			if c.IsSolved() != tt.solved {
				t.Errorf("IsSolved = %v, want %v", c.IsSolved(), tt.solved)
			}
			if c.TopRun() != tt.topRun {
				t.Errorf("TopRun = %d, want %d", c.TopRun(), tt.topRun)
			}
			if c.FreeSpace() != tt.space {
				t.Errorf("FreeSpace = %d, want %d", c.FreeSpace(), tt.space)
			}
		})
	}
}

func TestContainerTopColor(t *testing.T) {
	empty := NewEmptyContainer("A", 4)
	if _, ok := empty.TopColor(); ok {
		t.Error("empty container should have no top color")
	}

	c, _ := NewContainer("B", []Color{ColorRed, ColorBlue}, 4)
	top, ok := c.TopColor()
	if !ok || top != ColorBlue {
		t.Errorf("TopColor = %v/%v, want blue/true", top, ok)
	}
}

func TestContainerAddDoesNotMutate(t *testing.T) {
	c, _ := NewContainer("A", []Color{ColorRed}, 4)
	grown := c.Add(ColorBlue, ColorBlue)

	if c.Len() != 1 {
		t.Errorf("original container mutated: len %d", c.Len())
	}
	if grown.Len() != 3 {
		t.Errorf("expected grown len 3, got %d", grown.Len())
	}
	top, _ := grown.TopColor()
	if top != ColorBlue {
		t.Errorf("expected blue on top, got %v", top)
	}
}

func TestContainerRemoveTop(t *testing.T) {
	c, _ := NewContainer("A", []Color{ColorRed, ColorBlue, ColorBlue}, 4)

	shrunk, err := c.RemoveTop(2)
	if err != nil {
		t.Fatalf("RemoveTop failed: %v", err)
	}
	if shrunk.Len() != 1 {
		t.Errorf("expected len 1, got %d", shrunk.Len())
	}
	if c.Len() != 3 {
		t.Errorf("original container mutated: len %d", c.Len())
	}

	_, err = c.RemoveTop(4)
	if !errors.Is(err, ErrInsufficientColors) {
		t.Fatalf("expected ErrInsufficientColors, got %v", err)
	}
}

func TestContainerSharedPrefixStaysIntact(t *testing.T) {
	// RemoveTop shares the backing array with the original; a later Add on
	// the shrunk value must not leak into the original's view.
	c, _ := NewContainer("A", []Color{ColorRed, ColorBlue, ColorBlue}, 4)
	shrunk, _ := c.RemoveTop(2)
	_ = shrunk.Add(ColorGreen, ColorGreen)

	want := []Color{ColorRed, ColorBlue, ColorBlue}
	got := c.Colors()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("original colors corrupted: got %v, want %v", got, want)
		}
	}
}

func TestContainerEqual(t *testing.T) {
	a1, _ := NewContainer("A", []Color{ColorRed, ColorBlue}, 4)
	a2, _ := NewContainer("A", []Color{ColorRed, ColorBlue}, 4)
	if !a1.Equal(a2) {
		t.Error("structurally identical containers should be equal")
	}

	b, _ := NewContainer("B", []Color{ColorRed, ColorBlue}, 4)
	if a1.Equal(b) {
		t.Error("different ids should not be equal")
	}

	a3, _ := NewContainer("A", []Color{ColorBlue, ColorRed}, 4)
	if a1.Equal(a3) {
		t.Error("different color order should not be equal")
	}

	a4, _ := NewContainer("A", []Color{ColorRed, ColorBlue}, 5)
	if a1.Equal(a4) {
		t.Error("different capacity should not be equal")
	}
}

func TestParseColorRoundTrip(t *testing.T) {
	for c := Color(0); c < ColorCount; c++ {
		parsed, ok := ParseColor(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseColor(%q) = %v/%v, want %v/true", c.String(), parsed, ok, c)
		}
	}

	if _, ok := ParseColor("mauve"); ok {
		t.Error("unknown color should not parse")
	}
}

func TestPaletteDistinct(t *testing.T) {
	p := Palette(5)
	if len(p) != 5 {
		t.Fatalf("expected 5 colors, got %d", len(p))
	}
	seen := make(map[Color]bool)
	for _, c := range p {
		if seen[c] {
			t.Errorf("duplicate color %v in palette", c)
		}
		seen[c] = true
	}

	if n := len(Palette(100)); n != int(ColorCount) {
		t.Errorf("oversized palette request should clamp to %d, got %d", ColorCount, n)
	}
}
