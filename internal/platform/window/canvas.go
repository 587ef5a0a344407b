package window

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/jumper/internal/core"
)

const fontSize = 24

// canvas adapts an ebiten screen to the game's draw calls.
type canvas struct {
	dst    *ebiten.Image
	assets *Assets
	face   text.Face
}

func newCanvas(assets *Assets) (*canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &canvas{
		assets: assets,
		face:   &text.GoTextFace{Source: src, Size: fontSize},
	}, nil
}

func (c *canvas) Clear(bg core.Color) {
	c.dst.Fill(rgba(bg))
}

func (c *canvas) DrawSprite(name string, x, y float64, w, h int) {
	img := c.assets.Image(name)
	if img == nil {
		vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), rgba(core.ColorGray), false)
		return
	}
	op := &ebiten.DrawImageOptions{}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	}
	op.GeoM.Translate(x, y)
	c.dst.DrawImage(img, op)
}

func (c *canvas) DrawText(s string, col core.Color, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(col))
	text.Draw(c.dst, s, c.face, op)
}
