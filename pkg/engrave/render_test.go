package engrave

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/engrave/pkg/document"
)

func TestRenderEmptyStaff(t *testing.T) {
	cfg, _ := testConfig()
	doc := NewRenderer(cfg).Render(&Staff{})

	if doc.Width != cfg.Width || doc.Height != cfg.Height {
		t.Errorf("document size = %vx%v, want %vx%v", doc.Width, doc.Height, cfg.Width, cfg.Height)
	}
	want := []document.Node{
		&document.Rect{Width: cfg.Width, Height: cfg.Height, Fill: document.White},
	}
	if diff := cmp.Diff(want, doc.Children); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestSlackSplitsLeftoverWidth(t *testing.T) {
	cfg, _ := testConfig()
	r := NewRenderer(cfg)

	s := push(cfg, measures(100, 120))
	if got := len(s.Rows()); got != 1 {
		t.Fatalf("rows = %d, want 1", got)
	}
	if got := r.Slack(s.Rows()[0]); got != 120 {
		t.Errorf("Slack() = %v, want 120", got)
	}
}

func TestSlackConservation(t *testing.T) {
	cfg, _ := testConfig()
	r := NewRenderer(cfg)
	s := push(cfg, measures(37.5, 81, 12.25, 150, 99.9, 230, 44, 310, 5))

	target := cfg.Width - 2*cfg.DocumentPadding
	for k, row := range s.Rows() {
		e := r.Slack(row)
		got := row.Width() + float64(row.Len())*e
		if math.Abs(got-target) > 1e-9 {
			t.Errorf("row %d: width + k*slack = %v, want %v", k, got, target)
		}
	}
}

func TestRenderDrivesMeasures(t *testing.T) {
	cfg, _ := testConfig()
	ms := measures(200, 200, 200, 100)
	s := push(cfg, ms)
	NewRenderer(cfg).Render(s)

	start := cfg.StrokeWidth + cfg.DocumentPadding
	// Row 0: 200 + 200, slack (500 - 400 - 40) / 2 = 30.
	// Row 1: 200 + 100, slack (500 - 300 - 40) / 2 = 80.
	want := [][]renderCall{
		{{x: start, y: 0, extra: 30, index: 0}},
		{{x: start + 230, y: 0, extra: 30, index: 1}},
		{{x: start, y: 100, extra: 80, index: 0}},
		{{x: start + 280, y: 100, extra: 80, index: 1}},
	}
	for i, m := range ms {
		if diff := cmp.Diff(want[i], m.calls, cmp.AllowUnexported(renderCall{})); diff != "" {
			t.Errorf("measure %d calls mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestBaselineIsIndependentOfContent(t *testing.T) {
	cfg, _ := testConfig()
	r := NewRenderer(cfg)
	for k := 0; k < 5; k++ {
		if got, want := r.Baseline(k), 100*float64(k); got != want {
			t.Errorf("Baseline(%d) = %v, want %v", k, got, want)
		}
	}
}

func TestRenderAppendsAfterBackground(t *testing.T) {
	cfg, _ := testConfig()
	s := push(cfg, measures(100, 100, 450))
	doc := NewRenderer(cfg).Render(s)

	rects, lines, paths := doc.Count()
	if rects != 1 || lines != 3 || paths != 0 {
		t.Errorf("Count() = (%d, %d, %d), want (1, 3, 0)", rects, lines, paths)
	}
	if _, ok := doc.Children[0].(*document.Rect); !ok {
		t.Errorf("first child = %T, want *document.Rect", doc.Children[0])
	}
}
