package extract

import (
	"bytes"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

const (
	inflateChunkSize = 64 * 1024

	// salvageLimit caps the text recovered from undecodable binary data.
	salvageLimit = 4_000_000

	// minSalvageRun is the shortest printable run kept by salvage.
	minSalvageRun = 4
)

// Decoder turns artifact bytes into text. ok is false when the bytes are not
// valid for the encoding.
type Decoder struct {
	Name   string
	Decode func(data []byte) (text string, ok bool)
}

// Decoders is the ordered decode chain. The first decoder producing
// non-empty text wins.
var Decoders = []Decoder{
	{Name: "utf-8", Decode: decodeUTF8Strict},
	{Name: "utf-8-lossy", Decode: transformDecoder(unicode.UTF8.NewDecoder)},
	{Name: "utf-16le", Decode: transformDecoder(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder)},
	{Name: "utf-16be", Decode: transformDecoder(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder)},
	{Name: "ascii", Decode: decodeASCII},
	{Name: "salvage", Decode: salvagePrintable},
}

// DecodeText runs data through Decoders and returns the first non-empty text.
func DecodeText(data []byte) string {
	for _, d := range Decoders {
		if text, ok := d.Decode(data); ok && text != "" {
			return text
		}
	}
	return ""
}

func decodeUTF8Strict(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

func transformDecoder(newDecoder func() *encoding.Decoder) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		out, err := newDecoder().Bytes(data)
		if err != nil {
			return "", false
		}
		return string(out), true
	}
}

func decodeASCII(data []byte) (string, bool) {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return "", false
		}
	}
	return string(data), true
}

// salvagePrintable keeps runs of printable ASCII (and tab), one run per line.
func salvagePrintable(data []byte) (string, bool) {
	var out bytes.Buffer
	runStart := -1

	flush := func(end int) {
		if runStart >= 0 && end-runStart >= minSalvageRun {
			out.Write(data[runStart:end])
			out.WriteByte('\n')
		}
		runStart = -1
	}

	for i, b := range data {
		if (b >= 32 && b <= 126) || b == '\t' {
			if runStart < 0 {
				runStart = i
			}
		} else {
			flush(i)
		}
		if out.Len() > salvageLimit {
			runStart = -1
			break
		}
	}
	flush(len(data))

	return out.String(), out.Len() > 0
}

// looksCompressed reports whether data starts with a gzip or zlib signature.
func looksCompressed(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	return (data[0] == 0x1f && data[1] == 0x8b) || data[0] == 0x78
}

// Inflate decompresses gzip or zlib data. It returns nil when data carries
// no signature, fails to inflate or inflates to nothing. A truncated stream
// keeps what was produced before the cut.
func Inflate(data []byte) []byte {
	if !looksCompressed(data) {
		return nil
	}

	var (
		r   io.Reader
		err error
	)
	if data[0] == 0x1f {
		r, err = gzip.NewReader(bytes.NewReader(data))
	} else {
		r, err = zlib.NewReader(bytes.NewReader(data))
	}
	if err != nil {
		return nil
	}

	var out bytes.Buffer
	chunk := make([]byte, inflateChunkSize)
	for {
		n, err := r.Read(chunk)
		out.Write(chunk[:n])
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		return nil
	}

	if out.Len() == 0 {
		return nil
	}
	return out.Bytes()
}
