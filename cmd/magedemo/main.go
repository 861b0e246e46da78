// Command magedemo demonstrates the mage ASCII rendering engine.
//
// By default it opens a window with a small animated scene. With
// -output it instead composites one frame on the CPU and writes a PNG,
// which needs no GPU or display.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/magekit/mage"
)

func main() {
	var (
		cols    = flag.Int("cols", 80, "grid width in cells")
		rows    = flag.Int("rows", 25, "grid height in cells")
		output  = flag.String("output", "", "write one frame to a PNG instead of opening a window")
		verbose = flag.Bool("v", false, "enable engine logging")
	)
	flag.Parse()

	if *verbose {
		mage.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	demo := &helloDemo{}

	if *output != "" {
		if err := writeFrame(demo, *cols, *rows, *output); err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
		log.Printf("Frame saved to %s (%dx%d cells)", *output, *cols, *rows)
		return
	}

	err := mage.Run(demo,
		mage.WithTitle("Hello, World!"),
		mage.WithInnerSize(*cols, *rows),
	)
	if err != nil {
		log.Fatalf("Engine error: %v", err)
	}
}

// writeFrame runs one simulation tick and composites the grid with the
// software path.
func writeFrame(demo *helloDemo, cols, rows int, path string) error {
	demo.Start()
	demo.Tick(mage.SimInput{Width: cols, Height: rows})

	grid := mage.NewGrid(cols, rows)
	demo.Present(&mage.PresentInput{Grid: grid})

	c := mage.NewCompositor(nil)
	cw, ch := c.Font().CellSize()
	dst := mage.NewPixmap(cols*cw, rows*ch)
	c.Render(grid, dst)
	return dst.SavePNG(path)
}

// helloDemo draws a framed greeting and a marker that walks along the
// bottom of the frame.
type helloDemo struct {
	elapsed time.Duration
	width   int
	height  int
	accent  uint32
}

func (d *helloDemo) Start() {
	d.accent = mage.Yellow
}

func (d *helloDemo) Tick(input mage.SimInput) mage.TickResult {
	d.elapsed += input.DT
	d.width = input.Width
	d.height = input.Height
	if input.Key.Pressed && input.Key.Key == mage.KeySpace {
		if d.accent == mage.Yellow {
			d.accent = mage.Cyan
		} else {
			d.accent = mage.Yellow
		}
	}
	return mage.Continue
}

func (d *helloDemo) Present(p *mage.PresentInput) {
	g := p.Grid
	g.Clear(mage.White, mage.Black)

	box := mage.Pt(2, 1)
	g.DrawRect(box, d.width-4, d.height-2, mage.NewChar('#', d.accent, mage.Black))
	g.DrawString(mage.Pt(4, 3), "Hello, World!", mage.White, mage.Black)
	g.DrawString(mage.Pt(4, 5), "Space swaps the accent color, Escape quits.", mage.Green, mage.Black)
	g.DrawString(mage.Pt(4, 7), fmt.Sprintf("%d x %d cells", d.width, d.height), mage.Magenta, mage.Black)

	// Walk an @ along the inside of the frame bottom.
	span := d.width - 8
	if span > 0 {
		step := int(d.elapsed.Milliseconds()/125) % span
		g.Set(mage.Pt(4+step, d.height-3), mage.NewChar('@', d.accent, mage.Black))
	}
}
