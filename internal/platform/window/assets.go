// Package window provides the ebiten desktop frontend for the jumper.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

// Assets holds the decoded sprites of one config. Sprites without an
// image file on disk get a solid placeholder of the configured size and
// color. A reloaded config gets a fresh Assets so the running life keeps
// drawing the old images.
type Assets struct {
	sources map[string]image.Image
	images  map[string]*ebiten.Image
}

// LoadAssets decodes every sprite in set, searching dirs after the
// configured path. A file that exists but cannot be decoded is an error.
func LoadAssets(set config.SpriteSet, dirs ...string) (*Assets, error) {
	a := &Assets{
		sources: make(map[string]image.Image),
		images:  make(map[string]*ebiten.Image),
	}
	for _, sp := range set.All() {
		img, err := loadSprite(sp, dirs)
		if err != nil {
			return nil, err
		}
		a.sources[sp.Name] = img
	}
	return a, nil
}

// Size returns the pixel size of a loaded sprite, or 1x1 if unknown.
func (a *Assets) Size(name string) (int, int) {
	img, ok := a.sources[name]
	if !ok {
		return 1, 1
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Fit returns cfg with every sprite sized to its loaded image, so the
// simulation and any replay of it use the boxes that are drawn.
func (a *Assets) Fit(cfg config.JumperConfig) (config.JumperConfig, error) {
	for _, sp := range []*config.SpriteConfig{
		&cfg.Sprites.Player, &cfg.Sprites.Platform, &cfg.Sprites.Enemy, &cfg.Sprites.PowerUp,
	} {
		sp.Width, sp.Height = a.Size(sp.Name)
	}
	if err := cfg.Validate(); err != nil {
		return config.JumperConfig{}, fmt.Errorf("window: sprite sizes: %w", err)
	}
	return cfg, nil
}

// Image returns the GPU image for name, uploading it on first use.
func (a *Assets) Image(name string) *ebiten.Image {
	if img, ok := a.images[name]; ok {
		return img
	}
	src, ok := a.sources[name]
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	a.images[name] = img
	return img
}

// loadAssets decodes the sprites of cfg and fits cfg to them.
func loadAssets(cfg config.JumperConfig, dirs []string) (config.JumperConfig, *Assets, error) {
	assets, err := LoadAssets(cfg.Sprites, dirs...)
	if err != nil {
		return config.JumperConfig{}, nil, err
	}
	cfg, err = assets.Fit(cfg)
	if err != nil {
		return config.JumperConfig{}, nil, err
	}
	return cfg, assets, nil
}

func loadSprite(sp config.SpriteConfig, dirs []string) (image.Image, error) {
	path, ok := findSprite(sp.File, dirs)
	if !ok {
		return placeholder(sp), nil
	}
	return decodeSprite(path)
}

// findSprite locates file as given or under one of dirs.
func findSprite(file string, dirs []string) (string, bool) {
	if file == "" {
		return "", false
	}
	tried := []string{file}
	for _, d := range dirs {
		tried = append(tried, filepath.Join(d, file))
	}
	for _, p := range tried {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

func decodeSprite(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("window: sprite %s: %w", path, err)
		}
		return nil, fmt.Errorf("window: open sprite: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("window: decode %s: %w", path, err)
	}
	return img, nil
}

// placeholder draws a filled box with a one pixel darker outline.
func placeholder(sp config.SpriteConfig) image.Image {
	w, h := core.Max(1, sp.Width), core.Max(1, sp.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill := namedColor(sp.Color)
	edge := color.RGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := fill
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				c = edge
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// namedColor resolves an SVG color name, defaulting to gray.
func namedColor(name string) color.RGBA {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.Gray
}

// rgba maps a logical color to the window palette.
func rgba(c core.Color) color.RGBA {
	switch c {
	case core.ColorDefault, core.ColorBlack:
		return colornames.Black
	case core.ColorWhite:
		return colornames.White
	case core.ColorOrange:
		return colornames.Orange
	default:
		return namedColor(c.String())
	}
}
