package printer

// Builder accumulates ESC/POS commands for a thermal receipt printer.
type Builder struct {
	buf []byte
}

const (
	AlignLeft   byte = 0
	AlignCenter byte = 1
	AlignRight  byte = 2
)

const (
	SizeNormal       byte = 0x00
	SizeDoubleHeight byte = 0x10
	SizeDoubleWidth  byte = 0x20
	SizeDouble       byte = 0x30
)

func NewBuilder() *Builder {
	return &Builder{}
}

// Init resets the printer (ESC @).
func (b *Builder) Init() *Builder {
	b.buf = append(b.buf, 0x1B, 0x40)
	return b
}

func (b *Builder) Text(s string) *Builder {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Builder) Newline() *Builder {
	b.buf = append(b.buf, 0x0A)
	return b
}

func (b *Builder) Line(s string) *Builder {
	return b.Text(s).Newline()
}

// Bold toggles emphasis (ESC E n).
func (b *Builder) Bold(on bool) *Builder {
	b.buf = append(b.buf, 0x1B, 0x45, flag(on))
	return b
}

// Underline toggles underlining (ESC - n).
func (b *Builder) Underline(on bool) *Builder {
	b.buf = append(b.buf, 0x1B, 0x2D, flag(on))
	return b
}

// Size selects character size (ESC ! n).
func (b *Builder) Size(size byte) *Builder {
	b.buf = append(b.buf, 0x1B, 0x21, size)
	return b
}

// Align sets justification (ESC a n).
func (b *Builder) Align(a byte) *Builder {
	b.buf = append(b.buf, 0x1B, 0x61, a)
	return b
}

func (b *Builder) Feed(lines int) *Builder {
	for i := 0; i < lines; i++ {
		b.Newline()
	}
	return b
}

// Cut performs a full paper cut (GS V 0).
func (b *Builder) Cut() *Builder {
	b.buf = append(b.buf, 0x1D, 0x56, 0x00)
	return b
}

// QR stores data in the symbol buffer and prints it (GS ( k, model 2).
func (b *Builder) QR(data string, moduleSize byte) *Builder {
	b.buf = append(b.buf, 0x1D, 0x28, 0x6B, 0x04, 0x00, 0x31, 0x41, 0x32, 0x00)
	b.buf = append(b.buf, 0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x43, moduleSize)
	b.buf = append(b.buf, 0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x45, 0x30)
	n := len(data) + 3
	b.buf = append(b.buf, 0x1D, 0x28, 0x6B, byte(n&0xFF), byte((n>>8)&0xFF), 0x31, 0x50, 0x30)
	b.buf = append(b.buf, data...)
	b.buf = append(b.buf, 0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x51, 0x30)
	return b
}

func (b *Builder) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

func flag(on bool) byte {
	if on {
		return 1
	}
	return 0
}
