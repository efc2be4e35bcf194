package engrave

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/engrave/pkg/document"
)

func TestIndexOffsetIsLinear(t *testing.T) {
	cfg, _ := testConfig()
	if got := cfg.IndexOffset(1); got != 0 {
		t.Errorf("IndexOffset(1) = %v, want 0", got)
	}
	for i := -4; i < 12; i++ {
		a, b := cfg.IndexOffset(i), cfg.IndexOffset(i+1)
		if b <= a {
			t.Errorf("IndexOffset(%d) = %v, not above IndexOffset(%d) = %v", i+1, b, i, a)
		}
		if b-a != cfg.NoteRY {
			t.Errorf("step %d -> %d = %v, want %v", i, i+1, b-a, cfg.NoteRY)
		}
	}
}

func TestNoteHeadDraw(t *testing.T) {
	tests := []struct {
		name     string
		head     NoteHead
		duration Duration
		want     []document.Point
		runes    []rune
	}{
		{
			name:     "quarter on reference",
			head:     NewNoteHead(1, 0),
			duration: Duration{Kind: Quarter},
			want:     []document.Point{{X: 50, Y: 10}},
			runes:    []rune{QuarterHead},
		},
		{
			name:     "half shifted",
			head:     NewNoteHead(4, 20),
			duration: Duration{Kind: Half},
			want:     []document.Point{{X: 70, Y: 28}},
			runes:    []rune{HalfHead},
		},
		{
			name:     "dotted whole above the staff",
			head:     NewNoteHead(-1, 0),
			duration: Duration{Kind: Whole, Dotted: true},
			want:     []document.Point{{X: 66.5, Y: -2}, {X: 50, Y: -2}},
			runes:    []rune{WholeHead, DotGlyph},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, face := testConfig()
			var g document.Group
			tt.head.Draw(50, 10, tt.duration, cfg, &g)

			var got []document.Point
			for _, n := range g.Children {
				got = append(got, origin(n.(*document.Path)))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("placement mismatch (-want +got):\n%s", diff)
			}

			var runes []rune
			for _, r := range face.requests {
				if r.size != HeadSize {
					t.Errorf("%U requested at size %v, want %v", r.r, r.size, HeadSize)
				}
				runes = append(runes, r.r)
			}
			if diff := cmp.Diff(tt.runes, runes); diff != "" {
				t.Errorf("requested runes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDotOffsetIndependentOfIndex(t *testing.T) {
	cfg, _ := testConfig()
	if got := DotOffset(cfg); got != 16.5 {
		t.Fatalf("DotOffset() = %v, want 16.5", got)
	}

	d := Duration{Kind: Quarter, Dotted: true}
	for index := -3; index <= 10; index++ {
		var g document.Group
		NewNoteHead(index, 5).Draw(0, 0, d, cfg, &g)
		dot, head := origin(g.Children[0].(*document.Path)), origin(g.Children[1].(*document.Path))
		if dx := dot.X - head.X; dx != DotOffset(cfg) {
			t.Errorf("index %d: dot - head = %v, want %v", index, dx, DotOffset(cfg))
		}
		if dot.Y != head.Y {
			t.Errorf("index %d: dot y = %v, head y = %v", index, dot.Y, head.Y)
		}
	}
}

func TestDrawOutlinesSharesOutlines(t *testing.T) {
	cfg, face := testConfig()
	head, dot := HeadOutlines(Duration{Kind: Half, Dotted: true}, cfg)
	if dot == nil {
		t.Fatal("HeadOutlines() returned no dot for a dotted duration")
	}

	var g document.Group
	for _, idx := range []int{2, 4, 6} {
		NewNoteHead(idx, 0).DrawOutlines(0, 0, head, dot, cfg, &g)
	}
	if len(face.requests) != 2 {
		t.Errorf("face asked %d times, want 2", len(face.requests))
	}
	if len(g.Children) != 6 {
		t.Errorf("drew %d paths, want 6", len(g.Children))
	}
}

func TestHeadOutlinesUndotted(t *testing.T) {
	cfg, _ := testConfig()
	head, dot := HeadOutlines(Duration{Kind: Quarter}, cfg)
	if dot != nil {
		t.Errorf("dot = %+v, want nil", dot)
	}
	if head.Rune != QuarterHead {
		t.Errorf("head rune = %U, want %U", head.Rune, QuarterHead)
	}
}
