package engrave

import (
	"testing"

	"github.com/matzehuels/engrave/pkg/document"
)

func TestParseAccidental(t *testing.T) {
	tests := []struct {
		in   string
		want Accidental
	}{
		{"", NoAccidental},
		{"none", NoAccidental},
		{"sharp", Sharp},
		{"#", Sharp},
		{"Flat", Flat},
		{"b", Flat},
		{"natural", Natural},
		{"n", Natural},
	}
	for _, tt := range tests {
		got, err := ParseAccidental(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseAccidental(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseAccidental("double sharp"); err == nil {
		t.Error("ParseAccidental(double sharp) succeeded")
	}
}

func TestAccidentalWidth(t *testing.T) {
	cfg, face := testConfig()
	if got := NoAccidental.Width(cfg); got != 0 {
		t.Errorf("NoAccidental.Width() = %v, want 0", got)
	}
	if len(face.requests) != 0 {
		t.Errorf("NoAccidental asked the face for %v", face.requests)
	}

	// 80 / 2 + stroke.
	if got := Sharp.Width(cfg); got != 41.5 {
		t.Errorf("Sharp.Width() = %v, want 41.5", got)
	}
	if face.requests[0] != (request{SharpGlyph, cfg.AccidentalSize}) {
		t.Errorf("request = %v, want sharp at %v", face.requests[0], cfg.AccidentalSize)
	}
}

func TestAccidentalDraw(t *testing.T) {
	cfg, _ := testConfig()

	var g document.Group
	NoAccidental.Draw(0, 0, 3, cfg, &g)
	if len(g.Children) != 0 {
		t.Fatalf("NoAccidental drew %d nodes", len(g.Children))
	}

	Flat.Draw(10, 100, 3, cfg, &g)
	got := origin(g.Children[0].(*document.Path))
	if want := (document.Point{X: 10, Y: 112}); got != want {
		t.Errorf("origin = %v, want %v", got, want)
	}
}

func TestAccidentalGlyph(t *testing.T) {
	for a, want := range map[Accidental]rune{
		NoAccidental: 0,
		Sharp:        SharpGlyph,
		Flat:         FlatGlyph,
		Natural:      NatGlyph,
	} {
		if got := a.Glyph(); got != want {
			t.Errorf("%v.Glyph() = %U, want %U", a, got, want)
		}
	}
}
