package printer

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStartsWithInit(t *testing.T) {
	d := NewDocument(0)
	assert.Equal(t, Width58mm, d.Width())
	assert.Equal(t, []byte{ESC, '@'}, d.Bytes())
}

func TestPair(t *testing.T) {
	d := NewDocument(20)
	d.Pair("Total:", "1,250.00")
	assert.True(t, bytes.HasSuffix(d.Bytes(), []byte("Total:      1,250.00\n")))
}

func TestPairNeverOverlaps(t *testing.T) {
	d := NewDocument(10)
	d.Pair("Outstanding:", "12,34,567.50")
	assert.Contains(t, string(d.Bytes()), "Outstanding: 12,34,567.50\n")
}

func TestItemWrapsLongNames(t *testing.T) {
	d := NewDocument(24)
	d.Item("Basmati Rice Premium Long Grain", "2", "50.00", "100.00")
	out := string(d.Bytes())
	assert.Contains(t, out, "Basmati Rice Premium Lon\n")
	assert.Contains(t, out, "  2 x 50.00       100.00\n")

	d = NewDocument(24)
	d.Item("Rice", "2", "50.00", "100.00")
	out = string(d.Bytes())
	assert.Contains(t, out, "Rice              100.00\n")
	assert.Contains(t, out, "  2 x 50.00\n")
}

func TestCut(t *testing.T) {
	assert.True(t, bytes.HasSuffix(NewDocument(32).Cut(true).Bytes(), []byte{GS, 'V', 0x01}))
	assert.True(t, bytes.HasSuffix(NewDocument(32).Cut(false).Bytes(), []byte{GS, 'V', 0x00}))
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("", "", "")
	require.NoError(t, err)
	assert.Equal(t, "none", p.Kind())
	assert.False(t, p.IsConnected(context.Background()))
	assert.NoError(t, p.Print(context.Background(), []byte("x")))

	p, err = NewPrinterFromConfig("network", "", "127.0.0.1:9100")
	require.NoError(t, err)
	assert.Equal(t, "network", p.Kind())

	_, err = NewPrinterFromConfig("usb", "", "")
	assert.Error(t, err)
	_, err = NewPrinterFromConfig("bluetooth", "", "")
	assert.Error(t, err)
}

func TestUSBPrinterWritesFile(t *testing.T) {
	path := t.TempDir() + "/lp0"
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	p := NewUSBPrinter(path)
	assert.True(t, p.IsConnected(context.Background()))
	require.NoError(t, p.Print(context.Background(), []byte("hello")))
}
