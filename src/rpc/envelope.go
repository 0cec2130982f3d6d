// Package rpc implements JSON-RPC 2.0 over a Content-Length framed byte stream.
package rpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"xcode-error-mcp/src/jsonvalue"
)

// Version is the protocol version written on every response.
const Version = "2.0"

// Standard JSON-RPC 2.0 error codes.
const (
	ParseError     = -32700
	InvalidRequest = -32600
	MethodNotFound = -32601
	InvalidParams  = -32602
	InternalError  = -32603
)

var errNotObject = errors.New("message body is not a JSON object")

// Request is a decoded inbound message.
type Request struct {
	Method string
	// ID holds the raw id bytes. nil means the member was absent.
	ID     json.RawMessage
	Params json.RawMessage
}

// IsNotification reports whether the request carried no id member.
// An explicit "id": null is not a notification.
func (r Request) IsNotification() bool {
	return r.ID == nil
}

// ParseRequest decodes one message body. A non-string or missing method
// decodes as "". Absent or null params decode as nil.
func ParseRequest(body []byte) (Request, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}
	if members == nil {
		return Request{}, errNotObject
	}

	var req Request
	if raw, ok := members["method"]; ok {
		var method string
		if err := json.Unmarshal(raw, &method); err == nil {
			req.Method = method
		}
	}
	if raw, ok := members["id"]; ok {
		req.ID = append(json.RawMessage{}, raw...)
	}
	if raw, ok := members["params"]; ok && !isNull(raw) {
		req.Params = append(json.RawMessage{}, raw...)
	}
	return req, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int              `json:"code"`
	Message string           `json:"message"`
	Data    *jsonvalue.Value `json:"data,omitempty"`
}

// NewError returns an error object without data.
func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithData returns a copy of e carrying data.
func (e *Error) WithData(data jsonvalue.Value) *Error {
	cp := *e
	cp.Data = &data
	return &cp
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Response is an outbound message. Exactly one of Result and Error is set.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// NewSuccessResponse builds a result response. A nil result is encoded as null.
func NewSuccessResponse(id json.RawMessage, result any) (*Response, error) {
	raw := json.RawMessage("null")
	if result != nil {
		b, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("encode result: %w", err)
		}
		raw = b
	}
	return &Response{JSONRPC: Version, ID: echoID(id), Result: raw}, nil
}

// NewErrorResponse builds an error response.
func NewErrorResponse(id json.RawMessage, rpcErr *Error) *Response {
	return &Response{JSONRPC: Version, ID: echoID(id), Error: rpcErr}
}

func echoID(id json.RawMessage) json.RawMessage {
	if id == nil {
		return json.RawMessage("null")
	}
	return id
}
