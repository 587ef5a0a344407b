package window

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

type fakeKeyboard struct {
	held map[ebiten.Key]bool
	edge map[ebiten.Key]bool
}

func (f fakeKeyboard) pressed(k ebiten.Key) bool     { return f.held[k] }
func (f fakeKeyboard) justPressed(k ebiten.Key) bool { return f.edge[k] }

func TestPollInput(t *testing.T) {
	tests := []struct {
		name     string
		held     []ebiten.Key
		edge     []ebiten.Key
		want     core.InputFrame
		wantQuit bool
	}{
		{"idle", nil, nil, core.NewInputFrame(), false},
		{"arrow left", []ebiten.Key{ebiten.KeyLeft}, nil, core.NewInputFrame(core.ActionLeft), false},
		{"d right", []ebiten.Key{ebiten.KeyD}, nil, core.NewInputFrame(core.ActionRight), false},
		{"both", []ebiten.Key{ebiten.KeyA, ebiten.KeyRight}, nil, core.NewInputFrame(core.ActionLeft, core.ActionRight), false},
		{"held R is not a restart", []ebiten.Key{ebiten.KeyR}, nil, core.NewInputFrame(), false},
		{"R edge", nil, []ebiten.Key{ebiten.KeyR}, core.NewInputFrame(core.ActionRestart), false},
		{"escape", []ebiten.Key{ebiten.KeyEscape}, nil, core.NewInputFrame(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := fakeKeyboard{held: map[ebiten.Key]bool{}, edge: map[ebiten.Key]bool{}}
			for _, k := range tt.held {
				kb.held[k] = true
			}
			for _, k := range tt.edge {
				kb.edge[k] = true
			}
			in, quit := pollInput(kb)
			assert.Equal(t, tt.want, in)
			assert.Equal(t, tt.wantQuit, quit)
		})
	}
}

func TestPlaceholderUsesConfiguredSize(t *testing.T) {
	sp := config.DefaultJumperConfig().Sprites.Platform
	img := placeholder(sp)

	assert.Equal(t, image.Rect(0, 0, sp.Width, sp.Height), img.Bounds())
	r, g, b, _ := img.At(sp.Width/2, sp.Height/2).RGBA()
	wr, wg, wb, _ := colornames.Cyan.RGBA()
	assert.Equal(t, []uint32{wr, wg, wb}, []uint32{r, g, b})
}

func TestNamedColorFallback(t *testing.T) {
	assert.Equal(t, colornames.Red, namedColor("red"))
	assert.Equal(t, colornames.Gray, namedColor("not-a-color"))
	assert.Equal(t, colornames.Black, rgba(core.ColorBlack))
	assert.Equal(t, colornames.White, rgba(core.ColorWhite))
	assert.Equal(t, colornames.Red, rgba(core.ColorRed))
}

func TestFindAndDecodeSprite(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 7, 3))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	f, err := os.Create(filepath.Join(dir, "kangaroo.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	path, ok := findSprite("kangaroo.png", []string{"missing", dir})
	require.True(t, ok)

	decoded, err := decodeSprite(path)
	require.NoError(t, err)
	assert.Equal(t, 7, decoded.Bounds().Dx())
	assert.Equal(t, 3, decoded.Bounds().Dy())

	_, ok = findSprite("nope.png", []string{dir})
	assert.False(t, ok)
	_, ok = findSprite("", []string{dir})
	assert.False(t, ok)
}

func TestDecodeSpriteRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o600))

	_, err := decodeSprite(path)
	assert.ErrorContains(t, err, "window: decode")
}
