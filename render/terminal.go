package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// TermSurface maps the play area onto a tcell screen, one cell per
// (worldW/cols x worldH/rows) block. Shapes are filled with background-coloured
// spaces; text keeps whatever background is already in the cell.
type TermSurface struct {
	screen tcell.Screen
	worldW float64
	worldH float64
}

func NewTermSurface(screen tcell.Screen, worldW, worldH float64) *TermSurface {
	return &TermSurface{screen: screen, worldW: worldW, worldH: worldH}
}

func (s *TermSurface) Size() (w, h float64) { return s.worldW, s.worldH }

func (s *TermSurface) cellSize() (cw, ch float64) {
	cols, rows := s.screen.Size()
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return s.worldW / float64(cols), s.worldH / float64(rows)
}

// ToCell converts play-area coordinates to a cell.
func (s *TermSurface) ToCell(x, y float64) (cx, cy int) {
	cw, ch := s.cellSize()
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// ToWorld returns the play-area coordinates of the centre of a cell.
func (s *TermSurface) ToWorld(cx, cy int) (x, y float64) {
	cw, ch := s.cellSize()
	return (float64(cx) + 0.5) * cw, (float64(cy) + 0.5) * ch
}

func (s *TermSurface) Background(id string) {
	style := tcell.StyleDefault.Background(rgb(FallbackColor(id)))
	cols, rows := s.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *TermSurface) FillRect(x, y, w, h float64, c color.Color) {
	x0, y0 := s.ToCell(x, y)
	x1, y1 := s.ToCell(x+w, y+h)
	x1, y1 = max(x1, x0+1), max(y1, y0+1)
	style := tcell.StyleDefault.Background(rgb(c))
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.set(cx, cy, ' ', style)
		}
	}
}

func (s *TermSurface) FillCircle(cx, cy, r float64, c color.Color) {
	style := tcell.StyleDefault.Background(rgb(c))
	x0, y0 := s.ToCell(cx-r, cy-r)
	x1, y1 := s.ToCell(cx+r, cy+r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			wx, wy := s.ToWorld(x, y)
			if math.Hypot(wx-cx, wy-cy) <= r {
				s.set(x, y, ' ', style)
			}
		}
	}
	// the centre cell is always painted
	mx, my := s.ToCell(cx, cy)
	s.set(mx, my, ' ', style)
}

func (s *TermSurface) Text(str string, x, y float64, st TextStyle) {
	fill := st.Fill
	if fill == nil {
		fill = color.White
	}
	fg := rgb(fill)
	cx, cy := s.ToCell(x, y-st.Size/3)
	for _, r := range str {
		_, _, under, _ := s.screen.GetContent(cx, cy)
		_, bg, _ := under.Decompose()
		s.set(cx, cy, r, tcell.StyleDefault.Foreground(fg).Background(bg).Bold(true))
		cx++
	}
}

func (s *TermSurface) set(x, y int, r rune, style tcell.Style) {
	cols, rows := s.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

func rgb(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
