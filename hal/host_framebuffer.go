//go:build !tinygo

package hal

import "sync"

type hostFramebuffer struct {
	mu         sync.Mutex
	width      int
	height     int
	buf        []byte
	brightness int
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{
		width:      width,
		height:     height,
		buf:        make([]byte, width*((height+7)/8)),
		brightness: 255,
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatMono1 }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Present() error      { return nil }

func (f *hostFramebuffer) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.buf {
		f.buf[i] = 0
	}
}

func (f *hostFramebuffer) SetBrightness(v int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	f.brightness = v
}

func (f *hostFramebuffer) snapshot(dst []byte) (brightness int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
	return f.brightness
}
