package rpc

import (
	"bytes"
	"strconv"
	"strings"
)

var (
	crlfTerminator = []byte("\r\n\r\n")
	lfTerminator   = []byte("\n\n")
)

// FrameBuffer accumulates stream bytes and yields complete message bodies.
//
// A frame is a header block, a blank-line terminator (CRLFCRLF or LFLF, the
// earliest one in the buffer wins) and exactly Content-Length body bytes.
type FrameBuffer struct {
	buf []byte

	// OnDiscard, when set, is called with each header block dropped for a
	// missing or unusable Content-Length.
	OnDiscard func(header string)
}

// Append adds stream bytes to the buffer.
func (fb *FrameBuffer) Append(p []byte) {
	fb.buf = append(fb.buf, p...)
}

// Len returns the number of buffered, unconsumed bytes.
func (fb *FrameBuffer) Len() int {
	return len(fb.buf)
}

// Next removes and returns the next complete body. It returns false when the
// buffer holds no complete frame yet.
func (fb *FrameBuffer) Next() ([]byte, bool) {
	for {
		end, termLen := headerEnd(fb.buf)
		if end < 0 {
			return nil, false
		}
		bodyStart := end + termLen

		length, ok := contentLength(fb.buf[:end])
		if !ok {
			if fb.OnDiscard != nil {
				fb.OnDiscard(string(fb.buf[:end]))
			}
			fb.consume(bodyStart)
			continue
		}

		if len(fb.buf)-bodyStart < length {
			return nil, false
		}
		body := make([]byte, length)
		copy(body, fb.buf[bodyStart:bodyStart+length])
		fb.consume(bodyStart + length)
		return body, true
	}
}

func (fb *FrameBuffer) consume(n int) {
	rest := copy(fb.buf, fb.buf[n:])
	fb.buf = fb.buf[:rest]
}

// headerEnd returns the offset and length of the earliest header terminator.
func headerEnd(buf []byte) (int, int) {
	crlf := bytes.Index(buf, crlfTerminator)
	lf := bytes.Index(buf, lfTerminator)
	switch {
	case crlf < 0 && lf < 0:
		return -1, 0
	case crlf < 0:
		return lf, len(lfTerminator)
	case lf < 0 || crlf < lf:
		return crlf, len(crlfTerminator)
	default:
		return lf, len(lfTerminator)
	}
}

func contentLength(header []byte) (int, bool) {
	for _, line := range strings.Split(string(header), "\n") {
		key, value, found := strings.Cut(strings.TrimRight(line, "\r"), ":")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "Content-Length") {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" || strings.Trim(value, "0123456789") != "" {
			return 0, false
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// EncodeFrame prefixes body with its Content-Length header.
func EncodeFrame(body []byte) []byte {
	header := "Content-Length: " + strconv.Itoa(len(body)) + "\r\n\r\n"
	out := make([]byte, 0, len(header)+len(body))
	out = append(out, header...)
	return append(out, body...)
}
