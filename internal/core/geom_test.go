package core

import "testing"

func TestGridContains(t *testing.T) {
	g := NewGrid(20, 20)

	tests := []struct {
		name     string
		c        Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"last cell", Cell{19, 19}, true},
		{"one past last column", Cell{20, 5}, false},
		{"one past last row", Cell{5, 20}, false},
		{"negative column", Cell{-1, 5}, false},
		{"negative row", Cell{5, -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Contains(tc.c); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestGridCenterAndIndex(t *testing.T) {
	g := NewGrid(20, 20)
	if c := g.Center(); c != (Cell{10, 10}) {
		t.Errorf("Center() = %v, expected (10, 10)", c)
	}
	if g.Area() != 400 {
		t.Errorf("Area() = %d, expected 400", g.Area())
	}
	if c := g.CellAt(45); c != (Cell{5, 2}) {
		t.Errorf("CellAt(45) = %v, expected (5, 2)", c)
	}
}

func TestCellStep(t *testing.T) {
	start := Cell{5, 5}
	tests := []struct {
		d        Direction
		expected Cell
	}{
		{DirUp, Cell{5, 4}},
		{DirDown, Cell{5, 6}},
		{DirLeft, Cell{4, 5}},
		{DirRight, Cell{6, 5}},
	}

	for _, tc := range tests {
		if got := start.Step(tc.d); got != tc.expected {
			t.Errorf("Step(%v) = %v, expected %v", tc.d, got, tc.expected)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite() == d {
			t.Errorf("%v is its own opposite", d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite is not an involution for %v", d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("Delta of %v and its opposite do not cancel", d)
		}
	}
}

func TestDirectionInvalidPanics(t *testing.T) {
	bad := Direction(42)
	if bad.Valid() {
		t.Fatal("Direction(42) should not be valid")
	}
	defer func() {
		if recover() == nil {
			t.Error("Delta on an unknown direction should panic")
		}
	}()
	bad.Delta()
}

func TestActionDirection(t *testing.T) {
	if d, ok := ActionLeft.Direction(); !ok || d != DirLeft {
		t.Errorf("ActionLeft.Direction() = %v, %v", d, ok)
	}
	if _, ok := ActionConfirm.Direction(); ok {
		t.Error("ActionConfirm should not steer")
	}
	if ParseAction("Confirm") != ActionConfirm {
		t.Error("ParseAction(\"Confirm\") should round trip")
	}
	if ParseAction("bogus") != ActionNone {
		t.Error("unknown names should parse to ActionNone")
	}
}
