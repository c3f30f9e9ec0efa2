package effect

import "testing"

func TestGridSetAt(t *testing.T) {
	g := NewGrid(10, 5)

	g.Set(3, 2, '*', "#ffffff")
	if got := g.At(3, 2); got != '*' {
		t.Errorf("expected '*' at (3,2), got %q", got)
	}
	if got := g.At(0, 0); got != ' ' {
		t.Errorf("expected blank cell, got %q", got)
	}
}

func TestGridOutOfBoundsDropped(t *testing.T) {
	g := NewGrid(10, 5)

	g.Set(-1, 0, '*', "")
	g.Set(0, -1, '*', "")
	g.Set(10, 0, '*', "")
	g.Set(0, 5, '*', "")

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if g.At(x, y) != ' ' {
				t.Fatalf("out-of-bounds write leaked into (%d,%d)", x, y)
			}
		}
	}
	if g.At(-1, -1) != ' ' {
		t.Error("out-of-bounds read should return space")
	}
}

func TestGridSetString(t *testing.T) {
	g := NewGrid(10, 3)
	g.SetString(7, 1, "abcde", "#ffffff")

	if g.At(7, 1) != 'a' || g.At(8, 1) != 'b' || g.At(9, 1) != 'c' {
		t.Error("expected string written left to right from (7,1)")
	}
	// 'd' and 'e' fall off the right edge
	if g.At(0, 1) != ' ' {
		t.Error("expected overflow clipped, not wrapped")
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(1, 1, '#', "#ff0000")
	g.Clear()

	if g.At(1, 1) != ' ' {
		t.Error("expected cleared cell")
	}
}

func TestMaterializeKinds(t *testing.T) {
	scheme := Schemes[0]

	kinds := []Kind{KindFirework, KindFlash, KindText, KindArt, KindSparkle}

	for _, tc := range kinds {
		req := Request{Kind: tc, Text: "BOOM!", Color: scheme[0], Lifetime: 10, Seed: 1}
		r := Materialize(req, 4, 0.5, scheme)
		switch tc {
		case KindFirework:
			if _, ok := r.(*Firework); !ok {
				t.Errorf("%s: got %T", tc, r)
			}
		case KindFlash:
			if _, ok := r.(*Flash); !ok {
				t.Errorf("%s: got %T", tc, r)
			}
		case KindText:
			if _, ok := r.(*Text); !ok {
				t.Errorf("%s: got %T", tc, r)
			}
		case KindArt:
			if _, ok := r.(*Art); !ok {
				t.Errorf("%s: got %T", tc, r)
			}
		case KindSparkle:
			if _, ok := r.(*Sparkle); !ok {
				t.Errorf("%s: got %T", tc, r)
			}
		}
	}
}

func TestFireworkDeterministicBySeed(t *testing.T) {
	req := Request{Kind: KindFirework, X: 20, Y: 10, Color: "#ffff44", Lifetime: 30, Seed: 99}

	a := NewFirework(req)
	b := NewFirework(req)

	for age := 0; age < 30; age += 5 {
		ga := NewGrid(40, 20)
		gb := NewGrid(40, 20)
		a.Draw(ga, age)
		b.Draw(gb, age)
		if ga.String() != gb.String() {
			t.Fatalf("age %d: same seed drew different frames", age)
		}
	}
}

func TestFireworkDrawsWithinBounds(t *testing.T) {
	req := Request{Kind: KindFirework, X: 38, Y: 18, Color: "#ffffff", Lifetime: 30, Seed: 7}
	f := NewFirework(req)

	// drawing near the edge must not panic; clipping is the grid's job
	g := NewGrid(40, 20)
	for age := 0; age < 30; age++ {
		f.Draw(g, age)
	}
}

func TestTextRendersPhrase(t *testing.T) {
	req := Request{Kind: KindText, X: 2, Y: 2, Color: "#ff4444", Text: "WOW!", Lifetime: 12, Seed: 1}
	txt := NewText(req)

	g := NewGrid(60, 20)
	txt.Draw(g, 0)

	drawn := false
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) != ' ' {
				drawn = true
			}
		}
	}
	if !drawn {
		t.Error("expected the callout to draw something")
	}
}

func TestSchemesWellFormed(t *testing.T) {
	if len(Schemes) == 0 {
		t.Fatal("expected at least one color scheme")
	}
	for i, s := range Schemes {
		if len(s) == 0 {
			t.Errorf("scheme %d is empty", i)
		}
		for _, c := range s {
			if len(c) != 7 || c[0] != '#' {
				t.Errorf("scheme %d: %q is not a hex color", i, c)
			}
		}
	}
}
