package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xcode-error-mcp/src/jsonvalue"
)

type call struct {
	method string
	params json.RawMessage
}

func recordingHandler(calls *[]call) HandlerFunc {
	return func(ctx context.Context, method string, params json.RawMessage) (any, *Error) {
		*calls = append(*calls, call{method: method, params: params})
		switch method {
		case "ping":
			return map[string]bool{"ok": true}, nil
		case "nil":
			return nil, nil
		case "size":
			var s string
			_ = json.Unmarshal(params, &s)
			return len(s), nil
		}
		return nil, NewError(MethodNotFound, "Method not found").WithData(jsonvalue.String(method))
	}
}

func frames(msgs ...string) []byte {
	var out []byte
	for _, m := range msgs {
		out = append(out, EncodeFrame([]byte(m))...)
	}
	return out
}

func responses(t *testing.T, out []byte) []map[string]any {
	t.Helper()
	var fb FrameBuffer
	fb.Append(out)
	var got []map[string]any
	for {
		body, ok := fb.Next()
		if !ok {
			break
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal(body, &m))
		got = append(got, m)
	}
	assert.Zero(t, fb.Len(), "trailing bytes in output")
	return got
}

func serve(t *testing.T, input []byte) ([]map[string]any, []call) {
	t.Helper()
	var out bytes.Buffer
	var calls []call
	err := NewServer(bytes.NewReader(input), &out).Serve(context.Background(), recordingHandler(&calls))
	require.NoError(t, err)
	return responses(t, out.Bytes()), calls
}

func TestServeAnswersRequests(t *testing.T) {
	got, _ := serve(t, frames(
		`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":"two","method":"nope"}`,
	))

	require.Len(t, got, 2)
	assert.Equal(t, "2.0", got[0]["jsonrpc"])
	assert.Equal(t, 1.0, got[0]["id"])
	assert.Equal(t, map[string]any{"ok": true}, got[0]["result"])
	assert.NotContains(t, got[0], "error")

	assert.Equal(t, "two", got[1]["id"])
	assert.NotContains(t, got[1], "result")
	rpcErr := got[1]["error"].(map[string]any)
	assert.Equal(t, float64(MethodNotFound), rpcErr["code"])
	assert.Equal(t, "Method not found", rpcErr["message"])
	assert.Equal(t, "nope", rpcErr["data"])
}

func TestServeNotificationsGetNoResponse(t *testing.T) {
	got, calls := serve(t, frames(
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","method":"ping"}`,
		`{"jsonrpc":"2.0","id":7,"method":"ping"}`,
	))

	assert.Len(t, calls, 3)
	require.Len(t, got, 1)
	assert.Equal(t, 7.0, got[0]["id"])
}

func TestServeNullIDIsAnswered(t *testing.T) {
	got, _ := serve(t, frames(`{"jsonrpc":"2.0","id":null,"method":"ping"}`))

	require.Len(t, got, 1)
	id, present := got[0]["id"]
	assert.True(t, present)
	assert.Nil(t, id)
}

func TestServeNilResultIsNull(t *testing.T) {
	var out bytes.Buffer
	var calls []call
	err := NewServer(bytes.NewReader(frames(`{"id":3,"method":"nil"}`)), &out).
		Serve(context.Background(), recordingHandler(&calls))
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"result":null`)
}

func TestServeParamsNormalisation(t *testing.T) {
	_, calls := serve(t, frames(
		`{"id":1,"method":"nil","params":null}`,
		`{"id":2,"method":"nil"}`,
		`{"id":3,"method":"nil","params":{"name":"x"}}`,
		`{"id":4,"method":42}`,
	))

	require.Len(t, calls, 4)
	assert.Nil(t, calls[0].params)
	assert.Nil(t, calls[1].params)
	assert.JSONEq(t, `{"name":"x"}`, string(calls[2].params))
	assert.Equal(t, "", calls[3].method)
}

func TestServeDropsMalformedBodies(t *testing.T) {
	got, calls := serve(t, frames(
		`not json`,
		`[1,2,3]`,
		`null`,
		`{"id":1,"method":"ping"}`,
	))

	assert.Len(t, calls, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0]["id"])
}

func TestServeFragmentedInput(t *testing.T) {
	input := frames(`{"id":1,"method":"ping"}`, `{"id":2,"method":"ping"}`)
	var out bytes.Buffer
	var calls []call

	err := NewServer(iotest.OneByteReader(bytes.NewReader(input)), &out).
		Serve(context.Background(), recordingHandler(&calls))
	require.NoError(t, err)

	got := responses(t, out.Bytes())
	require.Len(t, got, 2)
	assert.Equal(t, 2.0, got[1]["id"])
}

func TestServeLargeBody(t *testing.T) {
	payload := strings.Repeat("a", 4*1024*1024)
	params, err := json.Marshal(payload)
	require.NoError(t, err)

	got, _ := serve(t, frames(`{"id":1,"method":"size","params":`+string(params)+`}`))
	require.Len(t, got, 1)
	assert.Equal(t, float64(len(payload)), got[0]["result"])
}

func TestServePartialFrameAtEOFIsNotDispatched(t *testing.T) {
	input := append(frames(`{"id":1,"method":"ping"}`), []byte("Content-Length: 50\r\n\r\n{\"id\":2")...)
	got, calls := serve(t, input)

	assert.Len(t, calls, 1)
	assert.Len(t, got, 1)
}

func TestServeReturnsReadErrors(t *testing.T) {
	boom := errors.New("boom")
	var calls []call
	err := NewServer(iotest.ErrReader(boom), &bytes.Buffer{}).
		Serve(context.Background(), recordingHandler(&calls))
	assert.ErrorIs(t, err, boom)
}

func TestServeStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls []call
	err := NewServer(bytes.NewReader(frames(`{"id":1,"method":"ping"}`)), &bytes.Buffer{}).
		Serve(ctx, recordingHandler(&calls))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, calls)
}

func TestParseRequestKeepsIDBytes(t *testing.T) {
	req, err := ParseRequest([]byte(`{"id":"abc-1","method":"initialize","params":{}}`))
	require.NoError(t, err)
	assert.False(t, req.IsNotification())
	assert.Equal(t, `"abc-1"`, string(req.ID))
	assert.Equal(t, "initialize", req.Method)
	assert.Equal(t, `{}`, string(req.Params))
}
