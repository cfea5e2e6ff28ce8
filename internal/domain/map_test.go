package domain

import "testing"

func TestMap_IndexConversion(t *testing.T) {
	m := NewMap(40, 25)

	idx := m.Idx(5, 3)
	if idx != 3*40+5 {
		t.Errorf("Idx(5,3) = %d, want %d", idx, 3*40+5)
	}

	x, y := m.XY(idx)
	if x != 5 || y != 3 {
		t.Errorf("XY roundtrip broke: got (%d,%d)", x, y)
	}
}

func TestMap_IdxPanicsOutOfBounds(t *testing.T) {
	m := NewMap(10, 10)

	defer func() {
		if recover() == nil {
			t.Error("Idx out of bounds must panic, not clamp")
		}
	}()
	m.Idx(10, 0)
}

func TestMap_ResetIndex(t *testing.T) {
	m := NewMap(5, 5)
	m.Tiles[m.Idx(2, 2)] = TileFloor // остальное - стены

	id := PackEntityID(1, 0)
	m.IndexEntity(id, Position{X: 2, Y: 2})
	m.Blocked[m.Idx(2, 2)] = true

	m.ResetIndex()

	if len(m.EntitiesAt(2, 2)) != 0 {
		t.Error("ResetIndex must clear tile content")
	}
	if m.Blocked[m.Idx(2, 2)] {
		t.Error("floor tile must be unblocked after reset")
	}
	if !m.Blocked[m.Idx(0, 0)] {
		t.Error("wall tile must stay blocked after reset")
	}
}

func TestMap_EntitiesAtOutOfBounds(t *testing.T) {
	m := NewMap(5, 5)
	if got := m.EntitiesAt(-1, 2); got != nil {
		t.Errorf("out of bounds query should be nil, got %v", got)
	}
}

func TestRect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 5, W: 10, H: 10}
	c := Rect{X: 20, Y: 20, W: 3, H: 3}

	if !a.Intersects(b) {
		t.Error("overlapping rooms must intersect")
	}
	if a.Intersects(c) {
		t.Error("distant rooms must not intersect")
	}

	cx, cy := a.Center()
	if cx != 5 || cy != 5 {
		t.Errorf("center of 10x10 at origin should be (5,5), got (%d,%d)", cx, cy)
	}
}

func TestPosition_IsAdjacent(t *testing.T) {
	p := Position{X: 5, Y: 5}

	cases := []struct {
		name  string
		other Position
		want  bool
	}{
		{"orthogonal", Position{X: 6, Y: 5}, true},
		{"diagonal", Position{X: 6, Y: 6}, true},
		{"self", Position{X: 5, Y: 5}, false},
		{"two away", Position{X: 7, Y: 5}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.IsAdjacent(tc.other); got != tc.want {
				t.Errorf("IsAdjacent(%v) = %v, want %v", tc.other, got, tc.want)
			}
		})
	}
}
