package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	_ "golang.org/x/image/webp"
)

// EbitenSurface draws onto an ebiten image. Set the target with Target before
// each Draw.
type EbitenSurface struct {
	dst    *ebiten.Image
	assets fs.FS
	log    *slog.Logger

	font   *opentype.Font
	faces  map[float64]font.Face
	images map[string]*ebiten.Image // nil entry: failed to load
}

// NewEbitenSurface loads backgrounds from assets on first use. assets may be nil.
func NewEbitenSurface(assets fs.FS, log *slog.Logger) (*EbitenSurface, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &EbitenSurface{
		assets: assets,
		log:    log,
		font:   f,
		faces:  make(map[float64]font.Face),
		images: make(map[string]*ebiten.Image),
	}, nil
}

func (s *EbitenSurface) Target(dst *ebiten.Image) { s.dst = dst }

func (s *EbitenSurface) Size() (w, h float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *EbitenSurface) Background(id string) {
	img := s.image(id)
	if img == nil {
		s.dst.Fill(FallbackColor(id))
		return
	}
	w, h := s.Size()
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	s.dst.DrawImage(img, op)
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (s *EbitenSurface) Text(str string, x, y float64, st TextStyle) {
	face := s.face(st.Size)
	if face == nil {
		return
	}
	ix, iy := int(math.Round(x)), int(math.Round(y))

	// outline: stamp the stroke colour around the glyphs, then fill on top
	if st.Stroke != nil && st.StrokeWidth > 0 {
		r := int(math.Ceil(st.StrokeWidth / 2))
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx == 0 && dy == 0 || dx*dx+dy*dy > r*r {
					continue
				}
				text.Draw(s.dst, str, face, ix+dx, iy+dy, st.Stroke)
			}
		}
	}
	fill := st.Fill
	if fill == nil {
		fill = color.White
	}
	text.Draw(s.dst, str, face, ix, iy, fill)
}

func (s *EbitenSurface) face(size float64) font.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		s.log.Warn("font face", "size", size, "err", err)
		f = nil
	}
	s.faces[size] = f
	return f
}

func (s *EbitenSurface) image(id string) *ebiten.Image {
	if img, ok := s.images[id]; ok {
		return img
	}
	img, err := loadImage(s.assets, id)
	if err != nil {
		s.log.Warn("background unavailable, using solid fill", "id", id, "err", err)
	}
	s.images[id] = img
	return img
}

func loadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	if fsys == nil {
		return nil, fmt.Errorf("no asset directory")
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
