package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an image file format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat parses an image format name, case insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case PNG, SVG:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported image format %q, want %q or %q", s, PNG, SVG)
	}
}

// Ext returns the file extension of the format, with the dot.
func (f Format) Ext() string { return "." + string(f) }

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

// table layout, in pixels.
const (
	cellWidth   = 140
	cellHeight  = 30
	tablePad    = 20
	titleHeight = 40
	titleSize   = 14
	cellSize    = 10
)

var (
	backgroundColor = drawing.ColorFromHex("ffffff")
	headerColor     = drawing.ColorFromHex("e5e7eb") // gray-200
	totalColor      = drawing.ColorFromHex("f3f4f6") // gray-100
	borderColor     = drawing.ColorFromHex("6b7280") // gray-500
	textColor       = drawing.ColorFromHex("111827") // gray-900
)

// TableImage draws the summary as a table image: a title, a header line, one
// line per holding and a TOTAL line.
func TableImage(w io.Writer, s *Summary, format Format) error {
	cells := s.cells()
	cols := len(cells[0])
	width := 2*tablePad + cols*cellWidth
	height := 2*tablePad + titleHeight + len(cells)*cellHeight

	r, err := format.provider()(width, height)
	if err != nil {
		return fmt.Errorf("cannot create %s renderer: %w", format, err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("cannot load font: %w", err)
	}
	r.SetFont(font)

	fillBox(r, chart.Box{Top: 0, Left: 0, Right: width, Bottom: height}, backgroundColor, backgroundColor)
	centerText(r, s.Title, chart.Box{Top: tablePad, Left: 0, Right: width, Bottom: tablePad + titleHeight}, titleSize)

	top := tablePad + titleHeight
	for i, line := range cells {
		fill := backgroundColor
		switch i {
		case 0:
			fill = headerColor
		case len(cells) - 1:
			fill = totalColor
		}
		for j, text := range line {
			box := chart.Box{
				Top:    top + i*cellHeight,
				Left:   tablePad + j*cellWidth,
				Right:  tablePad + (j+1)*cellWidth,
				Bottom: top + (i+1)*cellHeight,
			}
			fillBox(r, box, fill, borderColor)
			centerText(r, text, box, cellSize)
		}
	}

	if err := r.Save(w); err != nil {
		return fmt.Errorf("cannot write %s table image: %w", format, err)
	}
	return nil
}

// fillBox paints 'box' with 'fill' and draws its border.
func fillBox(r chart.Renderer, box chart.Box, fill, stroke drawing.Color) {
	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(1)
	r.MoveTo(box.Left, box.Top)
	r.LineTo(box.Right, box.Top)
	r.LineTo(box.Right, box.Bottom)
	r.LineTo(box.Left, box.Bottom)
	r.LineTo(box.Left, box.Top)
	r.Close()
	r.FillStroke()
}

// centerText writes 'text' centered in 'box'.
func centerText(r chart.Renderer, text string, box chart.Box, size float64) {
	if text == "" {
		return
	}
	r.SetFontColor(textColor)
	r.SetFontSize(size)
	tb := r.MeasureText(text)
	x := box.Left + (box.Width()-tb.Width())/2
	y := box.Top + (box.Height()+tb.Height())/2
	r.Text(text, x, y)
}

// AllocationChart draws a pie chart of the value of each holding.
func AllocationChart(w io.Writer, s *Summary, format Format) error {
	if len(s.Rows) == 0 {
		return fmt.Errorf("cannot chart an empty portfolio")
	}
	values := make([]chart.Value, 0, len(s.Rows))
	for _, h := range s.Rows {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %s", h.Symbol, h.Value),
			Value: h.Value.AsFloat(),
		})
	}

	pie := chart.PieChart{
		Title:  s.Title,
		Width:  600,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Values: values,
	}
	if err := pie.Render(format.provider(), w); err != nil {
		return fmt.Errorf("allocation chart render failed: %w", err)
	}
	return nil
}
