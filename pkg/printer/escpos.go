package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ESC/POS command bytes
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width and height
)

// Paper widths in characters
const (
	Width58mm = 32
	Width80mm = 48
)

// The default code page has no rupee sign; guest names and item names can
// carry other non-ASCII runes.
var transliterations = strings.NewReplacer("₹", "Rs.", "–", "-", "—", "-", "’", "'", "“", `"`, "”", `"`)

// Printable maps s onto the printer's ASCII code page. Runes with no
// equivalent become '?'.
func Printable(s string) string {
	s = transliterations.Replace(s)
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return strings.Map(func(r rune) rune {
				if r >= utf8.RuneSelf {
					return '?'
				}
				return r
			}, s)
		}
	}
	return s
}

// Document builds an ESC/POS byte stream for a thermal receipt printer.
// Every text method runs its input through Printable, so widths are byte
// counts.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument starts a document with ESC @. A width <= 0 means 58mm paper.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = Width58mm
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// Width returns the number of characters per line.
func (d *Document) Width() int { return d.width }

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold enables or disables emphasized text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetFontSize sets the character size.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text writes one line.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(Printable(s))
	d.buf.WriteByte(LF)
	return d
}

// TextF writes one formatted line.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Heading writes a centred, bold, double size line and restores the defaults.
func (d *Document) Heading(s string) *Document {
	return d.SetAlign(AlignCenter).
		SetBold(true).
		SetFontSize(FontDouble).
		Text(s).
		SetFontSize(FontNormal).
		SetBold(false)
}

// Centered writes each non-empty line centred, then switches back to left
// alignment.
func (d *Document) Centered(lines ...string) *Document {
	d.SetAlign(AlignCenter)
	for _, l := range lines {
		if l != "" {
			d.Text(l)
		}
	}
	return d.SetAlign(AlignLeft)
}

// Separator prints a full-width rule.
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints key on the left and value on the right of one line. A key
// too long for the line is cut so the value always fits.
func (d *Document) KeyValue(key, value string) *Document {
	key, value = Printable(key), Printable(value)
	key = truncate(key, d.width-len(value)-1)
	spaces := d.width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.WriteString(key)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(value)
	d.buf.WriteByte(LF)
	return d
}

// BoldKeyValue is KeyValue in emphasized text.
func (d *Document) BoldKeyValue(key, value string) *Document {
	return d.SetBold(true).KeyValue(key, value).SetBold(false)
}

// ChargeLine prints a bill row as the description on its own line followed by
// an indented "qty x rate" and the right-aligned amount.
//
//	Room 101 (Deluxe)
//	  3 x 6310.00           18930.00
func (d *Document) ChargeLine(description string, qty int, rate, amount string) *Document {
	d.Text(truncate(Printable(description), d.width))
	return d.KeyValue(fmt.Sprintf("  %d x %s", qty, rate), amount)
}

// PartialCut feeds past the tear bar and sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

func truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) <= n {
		return s
	}
	return s[:n]
}
