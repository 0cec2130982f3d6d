package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

const readChunkSize = 64 * 1024

// HandlerFunc answers one request. A nil error means success; a nil result
// is sent as JSON null.
type HandlerFunc func(ctx context.Context, method string, params json.RawMessage) (any, *Error)

// Server reads framed requests from r and writes framed responses to w.
// Requests are handled one at a time, in arrival order.
type Server struct {
	r      io.Reader
	w      io.Writer
	frames FrameBuffer
	log    zerolog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for wire tracing and dropped input.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// NewServer creates a server over the given stream halves.
func NewServer(r io.Reader, w io.Writer, opts ...Option) *Server {
	s := &Server{
		r:   r,
		w:   w,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.frames.OnDiscard = func(header string) {
		s.log.Debug().Str("header", header).Msg("discarding frame with bad Content-Length")
	}
	return s
}

// Serve runs the read loop until the input ends, ctx is cancelled or the
// stream fails. End of input returns nil.
func (s *Server) Serve(ctx context.Context, handler HandlerFunc) error {
	chunk := make([]byte, readChunkSize)
	eof := false

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if body, ok := s.frames.Next(); ok {
			if err := s.dispatch(ctx, handler, body); err != nil {
				return err
			}
			continue
		}

		if eof {
			if s.frames.Len() > 0 {
				s.log.Debug().Int("bytes", s.frames.Len()).Msg("dropping partial frame at end of input")
			}
			return nil
		}

		n, err := s.r.Read(chunk)
		if n > 0 {
			s.frames.Append(chunk[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				eof = true
				continue
			}
			return fmt.Errorf("read input: %w", err)
		}
	}
}

func (s *Server) dispatch(ctx context.Context, handler HandlerFunc, body []byte) error {
	s.log.Debug().Str("body", string(body)).Msg("[in]")

	req, err := ParseRequest(body)
	if err != nil {
		s.log.Debug().Err(err).Msg("dropping malformed message")
		return nil
	}

	result, rpcErr := handler(ctx, req.Method, req.Params)
	if req.IsNotification() {
		return nil
	}

	var resp *Response
	if rpcErr != nil {
		resp = NewErrorResponse(req.ID, rpcErr)
	} else {
		resp, err = NewSuccessResponse(req.ID, result)
		if err != nil {
			s.log.Error().Err(err).Str("method", req.Method).Msg("encoding result failed")
			resp = NewErrorResponse(req.ID, NewError(InternalError, "Internal error"))
		}
	}
	return s.write(resp)
}

func (s *Server) write(resp *Response) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	s.log.Debug().Str("body", string(body)).Msg("[out]")

	if _, err := s.w.Write(EncodeFrame(body)); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
