package glyph

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/engrave/pkg/document"
	"github.com/matzehuels/engrave/pkg/errors"
)

func mustParse(t *testing.T) *Font {
	t.Helper()
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse(goregular) error: %v", err)
	}
	return f
}

func TestParseRejectsMalformedData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"garbage", []byte("definitely not a font file")},
		{"truncated", goregular.TTF[:64]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeFont) {
				t.Errorf("Parse() code = %v, want %v", errors.GetCode(err), errors.ErrCodeFont)
			}
		})
	}
}

func TestLoadOutline(t *testing.T) {
	f := mustParse(t)

	o, err := f.Load('A', 75)
	if err != nil {
		t.Fatalf("Load('A') error: %v", err)
	}
	if o.Empty() {
		t.Fatal("Load('A') returned empty outline")
	}
	if o.Width() <= 0 {
		t.Errorf("Width() = %v, want > 0", o.Width())
	}
	if o.Segments[0].Op != document.MoveTo {
		t.Errorf("first op = %v, want MoveTo", o.Segments[0].Op)
	}
	if last := o.Segments[len(o.Segments)-1]; last.Op != document.Close {
		t.Errorf("last op = %v, want Close", last.Op)
	}
	// y grows downward: the top of a capital sits above the baseline.
	if o.Bounds.MinY >= 0 {
		t.Errorf("Bounds.MinY = %v, want < 0", o.Bounds.MinY)
	}
}

func TestOutlineWidthScalesWithSize(t *testing.T) {
	f := mustParse(t)

	small := f.Outline('H', 20)
	large := f.Outline('H', 40)
	ratio := large.Width() / small.Width()
	if math.Abs(ratio-2) > 0.1 {
		t.Errorf("width ratio = %v, want ~2", ratio)
	}
}

func TestCoversAndMissing(t *testing.T) {
	f := mustParse(t)

	if !f.Covers('.') {
		t.Error("Covers('.') = false, want true")
	}
	gClef := rune(0x1D11E)
	if f.Covers(gClef) {
		t.Error("Covers(G clef) = true, want false for Go Regular")
	}

	missing := f.Missing('.', gClef, 'A')
	if len(missing) != 1 || missing[0] != gClef {
		t.Errorf("Missing() = %U, want [%U]", missing, gClef)
	}
}

func TestCheck(t *testing.T) {
	f := mustParse(t)
	if err := f.Check('.', 'A', 0x1D158); err != nil {
		t.Errorf("Check() error = %v, want nil", err)
	}
}

func TestOutlinePathTranslates(t *testing.T) {
	o := Outline{
		Segments: []document.Segment{
			{Op: document.MoveTo, Points: [3]document.Point{{X: 0, Y: -5}}},
			{Op: document.LineTo, Points: [3]document.Point{{X: 4, Y: 0}}},
			{Op: document.Close},
		},
		Bounds: Rect{MinX: 0, MinY: -5, MaxX: 4, MaxY: 0},
	}

	p := o.Path(10, 20)
	if p.Fill != document.Black {
		t.Errorf("Fill = %q, want %q", p.Fill, document.Black)
	}
	if got := p.Segments[0].Points[0]; got != (document.Point{X: 10, Y: 15}) {
		t.Errorf("first point = %v, want {10 15}", got)
	}
	if got := p.Segments[1].Points[0]; got != (document.Point{X: 14, Y: 20}) {
		t.Errorf("second point = %v, want {14 20}", got)
	}
	if o.Width() != 4 || o.Bounds.Height() != 5 {
		t.Errorf("bounds = %vx%v, want 4x5", o.Width(), o.Bounds.Height())
	}
}
