//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	keys   *hostKeys
	enc    *hostEncoder
	clock  *hostClock
}

// New returns a host HAL implementation backed by a 128x64 virtual panel.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(128, 64),
		keys:   &hostKeys{},
		enc:    &hostEncoder{enabled: true},
		clock:  newHostClock(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{keys: h.keys, enc: h.enc} }
func (h *hostHAL) Clock() Clock     { return h.clock }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	keys *hostKeys
	enc  *hostEncoder
}

func (in hostInput) Keys() Keys       { return in.keys }
func (in hostInput) Encoder() Encoder { return in.enc }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostClock struct {
	start time.Time
}

func newHostClock() *hostClock {
	return &hostClock{start: time.Now()}
}

func (c *hostClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}
