package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decoderNamed(t *testing.T, name string) Decoder {
	t.Helper()
	for _, d := range Decoders {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("no decoder named %q", name)
	return Decoder{}
}

func TestDecoderOrder(t *testing.T) {
	var names []string
	for _, d := range Decoders {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"utf-8", "utf-8-lossy", "utf-16le", "utf-16be", "ascii", "salvage"}, names)
}

func TestDecodeUTF8Strict(t *testing.T) {
	d := decoderNamed(t, "utf-8")

	text, ok := d.Decode([]byte("héllo"))
	assert.True(t, ok)
	assert.Equal(t, "héllo", text)

	_, ok = d.Decode([]byte{'a', 0xff, 'b'})
	assert.False(t, ok)
}

func TestDecodeUTF8Lossy(t *testing.T) {
	text, ok := decoderNamed(t, "utf-8-lossy").Decode([]byte{'a', 0xff, 'b'})
	assert.True(t, ok)
	assert.Equal(t, "a�b", text)
}

func TestDecodeUTF16(t *testing.T) {
	le := []byte{'e', 0, 'r', 0, 'r', 0}
	text, ok := decoderNamed(t, "utf-16le").Decode(le)
	assert.True(t, ok)
	assert.Equal(t, "err", text)

	be := []byte{0, 'e', 0, 'r', 0, 'r'}
	text, ok = decoderNamed(t, "utf-16be").Decode(be)
	assert.True(t, ok)
	assert.Equal(t, "err", text)
}

func TestDecodeASCII(t *testing.T) {
	d := decoderNamed(t, "ascii")

	text, ok := d.Decode([]byte("plain"))
	assert.True(t, ok)
	assert.Equal(t, "plain", text)

	_, ok = d.Decode([]byte{'a', 0x80})
	assert.False(t, ok)
}

func TestSalvagePrintable(t *testing.T) {
	data := []byte("\x00\x01error: boom\x02ab\x03\x04\tld: error: x\xff")
	text, ok := salvagePrintable(data)
	assert.True(t, ok)
	assert.Equal(t, "error: boom\n\tld: error: x\n", text)

	_, ok = salvagePrintable([]byte{0, 'a', 'b', 'c', 0})
	assert.False(t, ok)
}

func TestSalvageIsCapped(t *testing.T) {
	line := strings.Repeat("a", 1000) + "\x00"
	data := []byte(strings.Repeat(line, 5000))

	text, ok := salvagePrintable(data)
	assert.True(t, ok)
	assert.LessOrEqual(t, len(text), salvageLimit+1001)
}

func TestDecodeTextPrefersStrictUTF8(t *testing.T) {
	assert.Equal(t, "error: x", DecodeText([]byte("error: x")))
	assert.Equal(t, "", DecodeText(nil))
}
