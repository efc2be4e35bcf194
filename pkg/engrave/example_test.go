package engrave_test

import (
	"fmt"

	"github.com/matzehuels/engrave/pkg/document"
	"github.com/matzehuels/engrave/pkg/engrave"
)

// bar is the smallest useful measure: a fixed width closed by a barline.
type bar float64

func (b bar) Width() float64 { return float64(b) }

func (b bar) Render(x, y, extra float64, _ int, cfg *engrave.Config, dst document.Appender) float64 {
	end := x + float64(b) + extra
	cfg.DrawLine(dst, end, y, end, y+8*cfg.NoteRY)
	return end
}

func Example() {
	cfg, err := engrave.Default()
	if err != nil {
		fmt.Println(err)
		return
	}

	var staff engrave.Staff
	for _, w := range []float64{200, 200, 200} {
		staff.Push(cfg, bar(w))
	}

	r := engrave.NewRenderer(cfg)
	for k, row := range staff.Rows() {
		fmt.Printf("row %d: %d measures, y=%.0f, slack=%.1f\n", k, row.Len(), r.Baseline(k), r.Slack(row))
	}

	doc := r.Render(&staff)
	rects, lines, paths := doc.Count()
	fmt.Printf("%d rect, %d lines, %d paths\n", rects, lines, paths)
	// Output:
	// row 0: 2 measures, y=0, slack=30.0
	// row 1: 1 measures, y=100, slack=260.0
	// 1 rect, 3 lines, 0 paths
}

func ExampleStaff_Push() {
	cfg, _ := engrave.Default()

	var staff engrave.Staff
	for _, w := range []float64{300, 300, 100, 100} {
		staff.Push(cfg, bar(w))
	}
	for k, row := range staff.Rows() {
		fmt.Printf("row %d: width %.0f\n", k, row.Width())
	}
	// Output:
	// row 0: width 300
	// row 1: width 400
	// row 2: width 100
}

func ExampleStem_Endpoints() {
	cfg, _ := engrave.Default()
	x1, y1, x2, y2 := engrave.NewStem(0, 2).Endpoints(50, 0, engrave.StemUp, cfg)
	fmt.Println(x1, y1, x2, y2)
	// Output: 61.5 -36 61.5 12
}
