package channel

import (
	"context"
	"encoding/json"
	"log"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/TimWhiting/rich-code-editor/pkg/edit"
	"github.com/TimWhiting/rich-code-editor/pkg/logutil"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

// Server exposes an Editor over a JSON-RPC 2.0 connection.
//
// Inbound methods:
//
//	editor/updateState  platform-originated editing delta
//	editor/state        read the current {text, selection, composing}
//	editor/setText      programmatic text assignment
//	editor/setSelection programmatic selection assignment
//	editor/styleAt      style lookup at a byte offset
//
// Outbound notification:
//
//	editor/stateChanged sent when a transition changed the triple, per the
//	                    echo policy
type Server struct {
	editor *edit.Editor
	logger *log.Logger
	echo   *Echo
}

// NewServer creates a Server for the given editor. A nil logger discards.
func NewServer(editor *edit.Editor, logger *log.Logger) *Server {
	if logger == nil {
		logger = logutil.Discard
	}
	return &Server{editor: editor, logger: logger}
}

// Serve runs the server on the given stream until the peer disconnects. Each
// request is handled synchronously to completion, in arrival order.
func (s *Server) Serve(ctx context.Context, stream jsonrpc2.ObjectStream) {
	// The subscription must be in place before the connection starts reading
	// requests, but sending needs the connection; hand it over through a
	// channel so an early transition waits instead of racing.
	connCh := make(chan *jsonrpc2.Conn, 1)
	var conn *jsonrpc2.Conn
	s.echo = NewEcho(func(state EditingState) {
		if conn == nil {
			conn = <-connCh
		}
		if err := conn.Notify(ctx, "editor/stateChanged", state); err != nil {
			s.logger.Printf("notify stateChanged: %v", err)
		}
	})
	cancel := s.editor.Subscribe(func(v edit.EditingValue) {
		s.echo.Publish(stateOf(v))
	})
	defer cancel()

	c := jsonrpc2.NewConn(ctx, stream, s.handler())
	connCh <- c
	select {
	case <-c.DisconnectNotify():
	case <-ctx.Done():
		c.Close()
	}
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (interface{}, error)

func (s *Server) handler() jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"editor/updateState":  s.updateState,
		"editor/state":        s.state,
		"editor/setText":      s.setText,
		"editor/setSelection": s.setSelection,
		"editor/styleAt":      s.styleAt,
	})
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		if req.Params == nil {
			return fn(ctx, conn, nil)
		}
		return fn(ctx, conn, *req.Params)
	})
}

// Handler implementations. These are all called synchronously.

func (s *Server) updateState(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (interface{}, error) {
	var state EditingState
	if json.Unmarshal(rawParams, &state) != nil {
		return nil, errInvalidParams
	}
	// The platform holds this state already; only a reconciliation that
	// changes the triple (e.g. defensive clamping) is echoed back.
	s.echo.Note(state)
	s.editor.HandleDelta(state.plainValue())
	return nil, nil
}

func (s *Server) state(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (interface{}, error) {
	return stateOf(s.editor.Value()), nil
}

func (s *Server) setText(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (interface{}, error) {
	var params struct {
		Text string `json:"text"`
	}
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	s.editor.SetText(params.Text)
	return nil, nil
}

func (s *Server) setSelection(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (interface{}, error) {
	var params Selection
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	sel := EditingState{Selection: params}.plainValue().Selection
	if err := s.editor.SetSelection(sel); err != nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	}
	return nil, nil
}

func (s *Server) styleAt(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (interface{}, error) {
	var params struct {
		Offset int `json:"offset"`
	}
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	return styleOptions(s.editor.StyleAt(params.Offset)), nil
}
