package printer

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// ESC/POS control bytes
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Align is a text alignment mode.
type Align byte

const (
	AlignLeft   Align = 0
	AlignCenter Align = 1
	AlignRight  Align = 2
)

// Character size modes for SetSize.
const (
	SizeNormal = 0x00
	SizeDouble = 0x11
	SizeWide   = 0x10
	SizeTall   = 0x01
)

// Width58mm and Width80mm are the characters per line of common paper rolls.
const (
	Width58mm = 32
	Width80mm = 48
)

// Document accumulates an ESC/POS job. Widths are counted in runes.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument starts a job for paper that fits width characters per line.
func NewDocument(width int) *Document {
	if width <= 0 {
		width = Width58mm
	}
	d := &Document{width: width}
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// Width is the number of characters per line.
func (d *Document) Width() int { return d.width }

// Align sets the alignment of following lines.
func (d *Document) Align(a Align) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(a)})
	return d
}

// Bold toggles emphasis.
func (d *Document) Bold(on bool) *Document {
	var b byte
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetSize sets the character size.
func (d *Document) SetSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Line writes s and a line feed.
func (d *Document) Line(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// Feed writes n empty lines.
func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// Rule prints a full-width line of ch.
func (d *Document) Rule(ch rune) *Document {
	return d.Line(strings.Repeat(string(ch), d.width))
}

// Pair prints left and right on one line, separated by padding.
func (d *Document) Pair(left, right string) *Document {
	return d.Line(pad(left, right, d.width))
}

// Item prints a line item: the name on its own line when it would collide
// with the amount, then quantity x rate and the amount right-aligned.
func (d *Document) Item(name, qty, rate, amount string) *Document {
	detail := "  " + qty + " x " + rate
	if utf8.RuneCountInString(name)+utf8.RuneCountInString(amount)+1 <= d.width {
		d.Pair(name, amount)
		return d.Line(detail)
	}
	d.Line(truncate(name, d.width))
	return d.Pair(detail, amount)
}

// Cut feeds and cuts the paper; partial leaves a small hinge.
func (d *Document) Cut(partial bool) *Document {
	mode := byte(0x00)
	if partial {
		mode = 0x01
	}
	d.buf.Write([]byte{GS, 'V', mode})
	return d
}

// Bytes returns the job.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

func pad(left, right string, width int) string {
	gap := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width])
}
