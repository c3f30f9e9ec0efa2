package mode

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		want Mode
		ok   bool
	}{
		{"simple", Simple, true},
		{"standard", Standard, true},
		{"insane", Insane, true},
		{"", 0, false},
		{"extreme", 0, false},
		{"Simple", 0, false},
	}

	for _, tc := range cases {
		got, err := Parse(tc.name)
		if tc.ok && err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("Parse(%q): expected an error", tc.name)
		}
		if tc.ok && got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, name := range Names() {
		m, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", name, err)
		}
		if m.String() != name {
			t.Errorf("expected %q, got %q", name, m.String())
		}
	}
}

func TestTableSanity(t *testing.T) {
	for _, m := range []Mode{Simple, Standard, Insane} {
		p := Table(m)

		if p.BeatInterval <= 0 {
			t.Errorf("%s: beat interval must be positive", m)
		}
		if p.TargetFPS <= 0 {
			t.Errorf("%s: target fps must be positive", m)
		}
		if p.MaxEffects <= 0 {
			t.Errorf("%s: max effects must be positive", m)
		}
		if p.Lifetime <= 0 {
			t.Errorf("%s: lifetime must be positive", m)
		}
		if len(p.KindWeights) == 0 {
			t.Errorf("%s: empty weight table", m)
		}
		for kind, w := range p.KindWeights {
			if w <= 0 {
				t.Errorf("%s: non-positive weight for %s", m, kind)
			}
		}
	}
}

func TestModeOrdering(t *testing.T) {
	simple := Table(Simple)
	standard := Table(Standard)
	insane := Table(Insane)

	if !(simple.MaxEffects < standard.MaxEffects && standard.MaxEffects < insane.MaxEffects) {
		t.Error("expected density to grow from simple through insane")
	}
	if !(simple.RotationPeriod >= standard.RotationPeriod && standard.RotationPeriod > insane.RotationPeriod) {
		t.Error("expected scheme rotation to speed up from simple through insane")
	}
}

func TestSimpleHasNoSubBeats(t *testing.T) {
	if Table(Simple).SubBeatsEnabled() {
		t.Error("simple mode must not have sub-beats")
	}
	if !Table(Standard).SubBeatsEnabled() {
		t.Error("standard mode must have sub-beats")
	}
	if !Table(Insane).SubBeatsEnabled() {
		t.Error("insane mode must have sub-beats")
	}
}

func TestFrameTime(t *testing.T) {
	p := Table(Simple)
	if got := p.FrameTime(); got != time.Second/30 {
		t.Errorf("expected ~33ms frame time at 30fps, got %v", got)
	}
}
