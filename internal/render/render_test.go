package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

type countingPen struct {
	moves, lines, strokes int
	last                  [2]float64
}

func (p *countingPen) MoveTo(x, y float64) { p.moves++; p.last = [2]float64{x, y} }
func (p *countingPen) LineTo(x, y float64) { p.lines++; p.last = [2]float64{x, y} }
func (p *countingPen) Stroke()             { p.strokes++ }

func recordTwo() *Recorder {
	rec := NewRecorder()
	rec.MoveTo(10, 20)
	rec.LineTo(30, 20)
	rec.Stroke()
	rec.MoveTo(5, 40)
	rec.LineTo(25, 2)
	rec.Stroke()
	return rec
}

func TestRecorderReplayAndBounds(t *testing.T) {
	rec := recordTwo()
	rec.Stroke()
	if rec.Len() != 2 {
		t.Fatalf("expected 2 paths, got %d", rec.Len())
	}

	pen := &countingPen{}
	rec.Replay(pen)
	if pen.moves != 2 || pen.lines != 2 || pen.strokes != 2 {
		t.Fatalf("unexpected replay counts %+v", pen)
	}
	if pen.last != [2]float64{25, 2} {
		t.Fatalf("expected replay to end at (25,2), got %v", pen.last)
	}

	box, ok := rec.Bounds()
	if !ok || box.LLx != 5 || box.LLy != 2 || box.URx != 30 || box.URy != 40 {
		t.Fatalf("unexpected bounds %+v", box)
	}

	rec.Clear()
	if _, ok := rec.Bounds(); ok || rec.Len() != 0 {
		t.Fatal("expected Clear to drop every path")
	}
}

func TestRasterStrokeCoverage(t *testing.T) {
	r := NewRaster(20, 10)
	r.MoveTo(2, 5)
	r.LineTo(18, 5)
	r.Stroke()

	img := r.Image()
	if got := img.AlphaAt(10, 5).A; got < 100 {
		t.Fatalf("expected coverage on the line, got %d", got)
	}
	if got := img.AlphaAt(10, 4).A; got < 100 {
		t.Fatalf("expected coverage above the line centre, got %d", got)
	}
	if got := img.AlphaAt(10, 8).A; got != 0 {
		t.Fatalf("expected no coverage away from the line, got %d", got)
	}
	if got := img.AlphaAt(0, 5).A; got != 0 {
		t.Fatalf("expected butt ends, got coverage %d before the start", got)
	}

	r.Clear()
	for _, a := range img.Pix {
		if a != 0 {
			t.Fatal("expected Clear to zero the mask")
		}
	}
}

func strokeFan(r *Raster) {
	for i := range 12 {
		f := float64(i)
		r.MoveTo(5+f, 3)
		r.LineTo(34-f*0.5, 26-f)
		r.Stroke()
	}
	r.MoveTo(20, 15)
	r.LineTo(20, 15)
	r.Stroke()
}

func TestRasterCoverageDoesNotDependOnCanvasSize(t *testing.T) {
	small, large := NewRaster(40, 30), NewRaster(2000, 1500)
	strokeFan(small)
	strokeFan(large)

	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			if a, b := small.Image().AlphaAt(x, y).A, large.Image().AlphaAt(x, y).A; a != b {
				t.Fatalf("expected equal coverage at (%d, %d), got %d and %d", x, y, a, b)
			}
		}
	}
	if small.Image().AlphaAt(20, 15).A == 0 {
		t.Fatal("expected a dot to leave coverage")
	}
}

func TestRasterClipsStrokesLeavingTheCanvas(t *testing.T) {
	r := NewRaster(10, 10)
	r.MoveTo(-20, 5)
	r.LineTo(30, 5)
	r.Stroke()
	r.MoveTo(50, 50)
	r.LineTo(60, 60)
	r.Stroke()
	if r.Image().AlphaAt(0, 5).A == 0 || r.Image().AlphaAt(9, 5).A == 0 {
		t.Fatal("expected coverage up to both edges")
	}
	if r.Image().AlphaAt(9, 9).A != 0 {
		t.Fatal("expected the off-canvas stroke to draw nothing")
	}
}

func TestRasterStrokeCostDoesNotScaleWithCanvas(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}
	// A full-canvas pass per stroke takes tens of milliseconds at this size,
	// so 2000 strokes would run for a minute.
	r := NewRaster(4096, 4096)
	start := time.Now()
	for i := range 2000 {
		x := float64(i%4000) + 0.5
		y := float64(i*7%4000) + 0.5
		r.MoveTo(x, y)
		r.LineTo(x+1, y+1)
		r.Stroke()
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("expected short strokes to be cheap on a large canvas, took %v", elapsed)
	}
}

func BenchmarkRasterShortStroke(b *testing.B) {
	r := NewRaster(800, 600)
	for i := 0; i < b.N; i++ {
		x := float64(i % 790)
		r.MoveTo(x, 300)
		r.LineTo(x+1, 301)
		r.Stroke()
	}
}

func TestComposeLayers(t *testing.T) {
	committed := image.NewAlpha(image.Rect(0, 0, 4, 1))
	transient := image.NewAlpha(image.Rect(0, 0, 4, 1))
	committed.Pix[1] = 255
	transient.Pix[2] = 255

	pal := DefaultPalette()
	pal.Live = color.RGBA{R: 255, A: 255}
	img := Snapshot(committed, transient, pal)

	if got := img.RGBAAt(0, 0); got != pal.Background {
		t.Fatalf("expected background, got %v", got)
	}
	if got := img.RGBAAt(1, 0); got != pal.Committed {
		t.Fatalf("expected committed colour, got %v", got)
	}
	if got := img.RGBAAt(2, 0); got != pal.Live {
		t.Fatalf("expected live colour, got %v", got)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}

func TestWriteSVG(t *testing.T) {
	rec := recordTwo()
	var buf bytes.Buffer
	if err := WriteSVG(&buf, 64, 48, rec.Paths(), DefaultSVGOptions()); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, "<path "); got != 2 {
		t.Fatalf("expected 2 paths, got %d in\n%s", got, out)
	}
	for _, want := range []string{
		`viewBox="0 0 64 48"`,
		`d="M10.000 20.000 L30.000 20.000"`,
		`stroke="#ffffff"`,
		`fill="#000000"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in\n%s", want, out)
		}
	}
}

func TestCellsFlush(t *testing.T) {
	cells := NewCells(10, 5, 100, 50)
	cells.MoveTo(0, 25)
	cells.LineTo(100, 25)
	cells.Stroke()

	grid := cells.Grid()
	for x := range 10 {
		if grid.At(x, 2) == 0 {
			t.Fatalf("expected cell (%d,2) inked", x)
		}
	}
	if grid.At(0, 0) != 0 {
		t.Fatal("expected untouched rows to stay clear")
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(20, 10)
	defer screen.Fini()

	cells.Flush(screen, 1, 1, '#', tcell.StyleDefault)
	screen.Show()

	if mainc, _, _, _ := screen.GetContent(4, 3); mainc != '#' {
		t.Fatalf("expected '#' at (4,3), got %q", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(4, 1); mainc == '#' {
		t.Fatal("expected (4,1) to stay blank")
	}

	cells.Clear()
	if grid.At(5, 2) != 0 {
		t.Fatal("expected Clear to erase the grid")
	}
}
