package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontally",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching vertically",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 10),
			expected: true,
		},
		{
			name:     "touching at a corner",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 10, 5, 5),
			expected: true,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "just apart",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10.01, 0, 10, 10),
			expected: false,
		},
		{
			name:     "empty box never overlaps",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 0, 5),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(100, 300, 20)

	if b.X != 80 || b.Y != 280 || b.W != 40 || b.H != 40 {
		t.Errorf("BoxAround() = %+v, expected {80 280 40 40}", b)
	}
	if b.Right() != 120 || b.Bottom() != 320 {
		t.Errorf("edges = (%v, %v), expected (120, 320)", b.Right(), b.Bottom())
	}
}

func TestBoxSpan(t *testing.T) {
	b := BoxSpan(10, 0, 80, 225)
	if b.W != 70 || b.H != 225 {
		t.Errorf("BoxSpan() size = %vx%v, expected 70x225", b.W, b.H)
	}
}

func TestBoxCells(t *testing.T) {
	tests := []struct {
		name     string
		box      Box
		expected Rect
	}{
		{"whole cells", NewBox(2, 3, 4, 5), NewRect(2, 3, 4, 5)},
		{"fractional edges round outward", NewBox(2.5, 3.2, 1.2, 0.5), NewRect(2, 3, 2, 1)},
		{"scaled from world units", NewBox(266, 300, 70, 150).Scale(0.5, 0.25), NewRect(133, 75, 35, 38)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.box.Cells(); got != tc.expected {
				t.Errorf("Cells() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPrimary) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionPrimary)
	f.Set(ActionPrimary)
	f.Set(ActionNone)
	if !f.Has(ActionPrimary) {
		t.Error("Set(ActionPrimary) should be visible through Has")
	}
	if len(f.Actions) != 1 {
		t.Errorf("ActionNone must not be recorded, got %d actions", len(f.Actions))
	}

	f.Clear()
	if f.Has(ActionPrimary) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestEventHas(t *testing.T) {
	e := EventDied | EventHighScore
	if !e.Has(EventDied) || !e.Has(EventHighScore) {
		t.Error("expected both flags to be set")
	}
	if e.Has(EventScored) {
		t.Error("EventScored should not be set")
	}
	if !e.Has(EventDied | EventHighScore) {
		t.Error("Has should accept combined flags")
	}
}

func TestEffectiveTickRate(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.EffectiveTickRate() != 60 {
		t.Errorf("default tick rate = %d, expected 60", cfg.EffectiveTickRate())
	}
	cfg.TickRate = -3
	if cfg.EffectiveTickRate() != DefaultTickRate {
		t.Errorf("negative tick rate should fall back, got %d", cfg.EffectiveTickRate())
	}
	cfg.TickRate = 30
	if cfg.EffectiveTickRate() != 30 {
		t.Errorf("tick rate = %d, expected 30", cfg.EffectiveTickRate())
	}
}
