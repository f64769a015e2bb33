package app

// Tile icons are built at init instead of being pasted in as byte blobs;
// at 30x30 the procedural form is both smaller and editable.

const tileSize = 30

type bitmap struct {
	w, h int
	bits []byte
}

func newBitmap(w, h int) *bitmap {
	return &bitmap{w: w, h: h, bits: make([]byte, ((w+7)/8)*h)}
}

func (b *bitmap) set(x, y int) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.bits[y*((b.w+7)/8)+x/8] |= 0x80 >> (x % 8)
}

func (b *bitmap) rect(x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.set(xx, yy)
		}
	}
}

func (b *bitmap) frame(x, y, w, h int) {
	b.rect(x, y, w, 1)
	b.rect(x, y+h-1, w, 1)
	b.rect(x, y, 1, h)
	b.rect(x+w-1, y, 1, h)
}

// ring draws a rough circle outline using the midpoint test per pixel;
// fine at icon scale.
func (b *bitmap) ring(cx, cy, r int) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			d := x*x + y*y
			if d >= (r-1)*(r-1) && d <= r*r {
				b.set(cx+x, cy+y)
			}
		}
	}
}

func motorIcon(angle int) []byte {
	b := newBitmap(tileSize, tileSize)
	c := tileSize / 2
	b.ring(c, c, 11)
	b.ring(c, c, 4)
	// Two adjacent rotor pole marks, rotated one position per frame.
	for _, p := range [2]int{angle % 4, (angle + 1) % 4} {
		switch p {
		case 0:
			b.rect(c-1, c-10, 3, 4)
		case 1:
			b.rect(c+7, c-1, 4, 3)
		case 2:
			b.rect(c-1, c+7, 3, 4)
		case 3:
			b.rect(c-10, c-1, 4, 3)
		}
	}
	return b.bits
}

func gearIcon() []byte {
	b := newBitmap(tileSize, tileSize)
	c := tileSize / 2
	b.ring(c, c, 9)
	b.ring(c, c, 3)
	// Teeth.
	b.rect(c-2, 2, 4, 5)
	b.rect(c-2, tileSize-7, 4, 5)
	b.rect(2, c-2, 5, 4)
	b.rect(tileSize-7, c-2, 5, 4)
	return b.bits
}

func infoIcon() []byte {
	b := newBitmap(tileSize, tileSize)
	b.frame(3, 3, tileSize-6, tileSize-6)
	c := tileSize / 2
	b.rect(c-1, 8, 3, 3)
	b.rect(c-1, 13, 3, 9)
	return b.bits
}

var (
	iconMotor = motorIcon(0)
	iconGear  = gearIcon()
	iconInfo  = infoIcon()

	// iconMotorSpin plays on the active Motor tile.
	iconMotorSpin = [][]byte{
		motorIcon(0),
		motorIcon(1),
		motorIcon(2),
		motorIcon(3),
	}
)
