//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     *oledFramebuffer
	keys   *pinKeys
	enc    *quadEncoder
	clock  tinyGoClock
}

// New returns an RP2040 HAL implementation.
//
// Display: SSD1306 128x64 over I2C0 (GP4 SDA / GP5 SCL).
// Buttons: GP10..GP13 (up/down/enter/back), active low with pull-ups.
// Encoder: quadrature on GP14 (A) / GP15 (B).
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400_000,
	})
	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{Width: 128, Height: 64, Address: 0x3C})
	dev.ClearDisplay()

	keys := newPinKeys(machine.GP10, machine.GP11, machine.GP12, machine.GP13)
	enc := newQuadEncoder(machine.GP14, machine.GP15)

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		fb:     newOLEDFramebuffer(&dev, 128, 64),
		keys:   keys,
		enc:    enc,
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{keys: h.keys, enc: h.enc} }
func (h *tinyGoHAL) Clock() Clock     { return h.clock }

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	keys Keys
	enc  Encoder
}

func (in tinyGoInput) Keys() Keys       { return in.keys }
func (in tinyGoInput) Encoder() Encoder { return in.enc }

type tinyGoClock struct{}

func (tinyGoClock) NowMs() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// oledFramebuffer keeps a local page-packed buffer and pushes it to the
// SSD1306 on Present.
type oledFramebuffer struct {
	dev    *ssd1306.Device
	width  int
	height int
	buf    []byte
}

func newOLEDFramebuffer(dev *ssd1306.Device, width, height int) *oledFramebuffer {
	return &oledFramebuffer{
		dev:    dev,
		width:  width,
		height: height,
		buf:    make([]byte, width*((height+7)/8)),
	}
}

func (f *oledFramebuffer) Width() int          { return f.width }
func (f *oledFramebuffer) Height() int         { return f.height }
func (f *oledFramebuffer) Format() PixelFormat { return PixelFormatMono1 }
func (f *oledFramebuffer) Buffer() []byte      { return f.buf }

func (f *oledFramebuffer) Clear() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

// SetBrightness is a no-op: the ssd1306 driver does not expose the contrast
// command.
func (f *oledFramebuffer) SetBrightness(v int) {}

func (f *oledFramebuffer) Present() error {
	if err := f.dev.SetBuffer(f.buf); err != nil {
		return err
	}
	return f.dev.Display()
}

// pinKeys reads active-low button pins. Debounce is handled by the RC
// network on the board; levels read here are treated as settled.
type pinKeys struct {
	up, down, enter, back machine.Pin
}

func newPinKeys(up, down, enter, back machine.Pin) *pinKeys {
	for _, p := range []machine.Pin{up, down, enter, back} {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return &pinKeys{up: up, down: down, enter: enter, back: back}
}

func (k *pinKeys) UpLevel() bool    { return !k.up.Get() }
func (k *pinKeys) DownLevel() bool  { return !k.down.Get() }
func (k *pinKeys) EnterLevel() bool { return !k.enter.Get() }
func (k *pinKeys) BackLevel() bool  { return !k.back.Get() }

// quadEncoder counts detents from a quadrature pair using an edge interrupt
// on channel A; channel B gives the direction.
type quadEncoder struct {
	a, b    machine.Pin
	count   int
	enabled bool
}

func newQuadEncoder(a, b machine.Pin) *quadEncoder {
	e := &quadEncoder{a: a, b: b, enabled: true}
	a.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	b.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	a.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		if !e.enabled {
			return
		}
		if e.b.Get() {
			e.count++
		} else {
			e.count--
		}
	})
	return e
}

func (e *quadEncoder) Delta() int {
	d := e.count
	e.count = 0
	return d
}

func (e *quadEncoder) SetEnabled(on bool) {
	e.enabled = on
	if !on {
		e.count = 0
	}
}
