package printer

import (
	"bytes"
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_KeyValueFillsWidth(t *testing.T) {
	doc := NewDocument(20)
	doc.KeyValue("Subtotal", "100.00")

	out := doc.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte{ESC, '@'}))
	line := strings.TrimSuffix(string(out[2:]), "\n")
	assert.Len(t, line, 20)
	assert.True(t, strings.HasPrefix(line, "Subtotal"))
	assert.True(t, strings.HasSuffix(line, "100.00"))
}

func TestDocument_KeyValueTruncatesLongKey(t *testing.T) {
	doc := NewDocument(16)
	doc.KeyValue("A very long description", "99.00")

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	assert.Len(t, line, 16)
	assert.True(t, strings.HasSuffix(line, " 99.00"))
}

func TestDocument_ChargeLine(t *testing.T) {
	doc := NewDocument(32)
	doc.ChargeLine("Room 101 (Deluxe)", 3, "6310.00", "18930.00")

	lines := strings.Split(strings.TrimSuffix(string(doc.Bytes()[2:]), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Room 101 (Deluxe)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  3 x 6310.00"))
	assert.True(t, strings.HasSuffix(lines[1], "18930.00"))
	assert.Len(t, lines[1], 32)
}

func TestPrintable(t *testing.T) {
	assert.Equal(t, "Rs.1200.00", Printable("₹1200.00"))
	assert.Equal(t, "Caf? Mocha - large", Printable("Café Mocha – large"))
	assert.Equal(t, "plain", Printable("plain"))
}

func TestDocument_KeyValueAlignsRupeeAmounts(t *testing.T) {
	doc := NewDocument(24)
	doc.KeyValue("Balance:", "₹500.00")

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	assert.Len(t, line, 24)
	assert.True(t, strings.HasSuffix(line, "Rs.500.00"))
}

func TestDocument_CenteredSkipsEmptyLines(t *testing.T) {
	doc := NewDocument(Width58mm)
	doc.Centered("Sea View", "", "0832 555 0101")

	out := doc.Bytes()[2:]
	assert.True(t, bytes.HasPrefix(out, []byte{ESC, 'a', AlignCenter}))
	assert.True(t, bytes.HasSuffix(out, []byte{ESC, 'a', AlignLeft}))
	assert.Equal(t, 2, bytes.Count(out, []byte{LF}))
}

func TestNew(t *testing.T) {
	p, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, "none", p.Type())
	assert.NoError(t, p.Print(context.Background(), []byte("x")))

	_, err = New(Config{Type: "usb"})
	assert.Error(t, err)
	_, err = New(Config{Type: "network"})
	assert.Error(t, err)
	_, err = New(Config{Type: "bluetooth"})
	assert.Error(t, err)
}

func TestUSBPrinter_WritesToDevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lp0")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	p := NewUSBPrinter(path)
	assert.True(t, p.IsConnected(context.Background()))
	require.NoError(t, p.Print(context.Background(), []byte("hello")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestNetworkPrinter_SendsBytes(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		received <- data
	}()

	p := NewNetworkPrinter(ln.Addr().String())
	require.NoError(t, p.Print(context.Background(), []byte{ESC, '@', 'h', 'i'}))
	assert.Equal(t, []byte{ESC, '@', 'h', 'i'}, <-received)
}
