package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrNotImplemented marks a capability the current target does not provide.
var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatMono1 is 1bpp, page-packed: byte (y/8)*width+x, bit y%8.
	// This is the native layout of SSD1306-class OLED controllers.
	PixelFormatMono1 PixelFormat = iota + 1
)

// Framebuffer is a monochrome pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	Buffer() []byte
	Clear()
	// SetBrightness sets panel brightness, 0..255. Best effort: not every
	// target can honor it.
	SetBrightness(v int)
	Present() error
}

// Keys exposes the four navigation buttons as debounced levels.
// True means the button is held down.
type Keys interface {
	UpLevel() bool
	DownLevel() bool
	EnterLevel() bool
	BackLevel() bool
}

// Encoder exposes the rotary encoder.
type Encoder interface {
	// Delta returns the number of signed detent steps since the last call
	// and resets the internal count.
	Delta() int
	// SetEnabled gates the counter. While disabled, steps are discarded.
	SetEnabled(on bool)
}

// Clock provides monotonic milliseconds.
type Clock interface {
	NowMs() int64
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keys() Keys
	Encoder() Encoder
}

// HAL provides the only contact point between the UI and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Clock() Clock
}
