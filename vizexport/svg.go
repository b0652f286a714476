package vizexport

import (
	"bytes"
	"fmt"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
)

// Options configures SVG export.
type Options struct {
	Width      int
	Height     int
	NodeRadius int
	Margin     int
	ShowLabels bool
	Title      string
}

// DefaultOptions returns sensible export defaults.
func DefaultOptions() Options {
	return Options{
		Width:      900,
		Height:     900,
		NodeRadius: 18,
		Margin:     60,
		ShowLabels: true,
		Title:      "Parity game arena",
	}
}

// Export renders g as an SVG document.
func Export(g *Graph, opts Options) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("vizexport: graph must not be nil")
	}
	if opts.Width <= 0 {
		opts.Width = 900
	}
	if opts.Height <= 0 {
		opts.Height = 900
	}
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = 18
	}
	if opts.Margin <= 0 {
		opts.Margin = 60
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#10121a")

	positions := circularLayout(g, opts)

	drawEdges(canvas, g, positions)
	drawVertices(canvas, g, positions, opts)

	if opts.Title != "" {
		canvas.Text(opts.Margin/2, opts.Margin/2, opts.Title, "fill:#eeeeee;font-size:18px")
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveToFile renders g and writes the result to path.
func SaveToFile(g *Graph, path string, opts Options) error {
	data, err := Export(g, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// circularLayout places every vertex evenly around a circle inscribed in
// the canvas, a force-free fallback layout that needs no iterative physics
// simulation for diagrams this small.
func circularLayout(g *Graph, opts Options) map[int][2]int {
	positions := make(map[int][2]int, len(g.Vertices))
	n := len(g.Vertices)
	if n == 0 {
		return positions
	}
	cx := opts.Width / 2
	cy := opts.Height / 2
	radius := (min(opts.Width, opts.Height) / 2) - opts.Margin - opts.NodeRadius
	if radius < 1 {
		radius = 1
	}
	for i, v := range g.Vertices {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x := cx + int(float64(radius)*math.Cos(angle))
		y := cy + int(float64(radius)*math.Sin(angle))
		positions[v.ID] = [2]int{x, y}
	}
	return positions
}

func drawEdges(canvas *svg.SVG, g *Graph, positions map[int][2]int) {
	for _, e := range g.Edges {
		from, ok1 := positions[e[0]]
		to, ok2 := positions[e[1]]
		if !ok1 || !ok2 {
			continue
		}
		canvas.Line(from[0], from[1], to[0], to[1], "stroke:#555577;stroke-width:1.5")
	}
}

func drawVertices(canvas *svg.SVG, g *Graph, positions map[int][2]int, opts Options) {
	for _, v := range g.Vertices {
		p, ok := positions[v.ID]
		if !ok {
			continue
		}
		style := "fill:#444466;stroke:#cccccc;stroke-width:1"
		switch v.Winner {
		case WinnerPlayer0:
			style = "fill:#2e8b57;stroke:#cccccc;stroke-width:1"
		case WinnerPlayer1:
			style = "fill:#8b2e2e;stroke:#cccccc;stroke-width:1"
		}
		if v.Owner == 0 {
			canvas.Circle(p[0], p[1], opts.NodeRadius, style)
		} else {
			side := opts.NodeRadius * 2
			canvas.Rect(p[0]-opts.NodeRadius, p[1]-opts.NodeRadius, side, side, style)
		}
		if opts.ShowLabels {
			canvas.Text(p[0], p[1]+opts.NodeRadius+14, fmt.Sprintf("%d", v.ID), "fill:#eeeeee;font-size:12px;text-anchor:middle")
		}
	}
}
