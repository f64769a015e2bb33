//go:build !tinygo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/haoyibits/Motor-Monitor/internal/buildinfo"
)

// RunWindow starts a desktop window that displays the framebuffer and
// forwards keyboard and mouse-wheel input. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Motor-Monitor (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*4, h.fb.height*4)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.keys.poll()
	g.h.enc.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	brightness := fb.snapshot(g.scratch)
	lum := uint8(brightness)

	dst := g.img.Pix
	for y := 0; y < fb.height; y++ {
		page := y / 8
		mask := byte(1) << (y % 8)
		for x := 0; x < fb.width; x++ {
			var v uint8
			if g.scratch[page*fb.width+x]&mask != 0 {
				v = lum
			}
			j := (y*fb.width + x) * 4
			dst[j+0] = v
			dst[j+1] = v
			dst[j+2] = v
			dst[j+3] = 0xFF
		}
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
