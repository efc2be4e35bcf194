package engrave

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/engrave/pkg/document"
)

func TestPushWrapsGreedily(t *testing.T) {
	cfg, _ := testConfig()

	tests := []struct {
		name   string
		widths []float64
		want   [][]float64
	}{
		{
			name:   "three wide measures",
			widths: []float64{200, 200, 200},
			want:   [][]float64{{200, 200}, {200}},
		},
		{
			name:   "exact fit starts a new row",
			widths: []float64{250, 250},
			want:   [][]float64{{250}, {250}},
		},
		{
			name:   "just under the page",
			widths: []float64{250, 249.5},
			want:   [][]float64{{250, 249.5}},
		},
		{
			name:   "oversized measure stands alone",
			widths: []float64{100, 700, 100},
			want:   [][]float64{{100}, {700}, {100}},
		},
		{
			name:   "no lookahead",
			widths: []float64{300, 300, 100, 100},
			want:   [][]float64{{300}, {300, 100}, {100}},
		},
		{
			name:   "empty",
			widths: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := push(cfg, measures(tt.widths...))
			if diff := cmp.Diff(tt.want, rowWidths(s)); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
			if s.Len() != len(tt.widths) {
				t.Errorf("Len() = %d, want %d", s.Len(), len(tt.widths))
			}
		})
	}
}

func TestPushRowsStayBelowPageWidth(t *testing.T) {
	cfg, _ := testConfig()
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(20) + 1
		widths := make([]float64, n)
		for i := range widths {
			widths[i] = rng.Float64() * 1.2 * cfg.Width
		}

		s := push(cfg, measures(widths...))
		for k, row := range s.Rows() {
			if row.Len() == 0 {
				t.Fatalf("trial %d: row %d is empty", trial, k)
			}
			var sum float64
			for _, m := range row.Measures() {
				sum += m.Width()
			}
			if sum != row.Width() {
				t.Errorf("trial %d: row %d Width() = %v, want exact sum %v", trial, k, row.Width(), sum)
			}
			if row.Width() >= cfg.Width && row.Len() != 1 {
				t.Errorf("trial %d: row %d width %v >= page %v with %d measures",
					trial, k, row.Width(), cfg.Width, row.Len())
			}
		}
	}
}

func TestPushIsDeterministic(t *testing.T) {
	cfg, _ := testConfig()
	widths := []float64{120, 80, 310, 45, 45, 200, 499, 10, 260}

	first := rowWidths(push(cfg, measures(widths...)))
	second := rowWidths(push(cfg, measures(widths...)))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("partitions differ (-first +second):\n%s", diff)
	}
}

func TestPushReadsWidthOnce(t *testing.T) {
	cfg, _ := testConfig()
	m := &countingMeasure{width: 100}

	var s Staff
	s.Push(cfg, m)
	s.Push(cfg, &fixedMeasure{width: 100})
	if m.reads != 1 {
		t.Errorf("Width() read %d times, want 1", m.reads)
	}
	if got := s.Rows()[0].Width(); got != 200 {
		t.Errorf("row width = %v, want 200", got)
	}
}

type countingMeasure struct {
	width float64
	reads int
}

func (m *countingMeasure) Render(x, _, extra float64, _ int, _ *Config, _ document.Appender) float64 {
	return x + m.width + extra
}

func (m *countingMeasure) Width() float64 {
	m.reads++
	return m.width
}
