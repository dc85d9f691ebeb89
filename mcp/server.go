// Package mcp serves the calculator tools over a Content-Length framed
// JSON-RPC 2.0 stream, normally stdio. One frame is one message: headers,
// a blank line, then exactly Content-Length bytes of JSON.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"finops-calc/core/engine"
	"finops-calc/internal/errors"
)

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

const protocolVersionDefault = "2024-11-05"

// ServerName and ServerVersion identify this server during initialize.
const (
	ServerName    = "finops-calculator-mcp"
	ServerVersion = "0.1.0"
)

// Tool is one callable tool: its advertised contract plus its handler.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
	Handler     func(args json.RawMessage) (interface{}, error)
}

// Server reads framed requests and writes framed responses. Writes are
// serialized; reads happen on the single Run goroutine.
type Server struct {
	eng    *engine.Engine
	log    *zap.Logger
	in     *bufio.Reader
	out    io.Writer
	mu     sync.Mutex
	tools  []Tool
	byName map[string]*Tool
}

// NewServer wires the five calculator tools over the given stream pair.
func NewServer(eng *engine.Engine, log *zap.Logger, in io.Reader, out io.Writer) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		eng: eng,
		log: log,
		in:  bufio.NewReader(in),
		out: out,
	}
	s.tools = []Tool{
		{
			Name:        "finops.calculate",
			Description: "Run the FinOps calculator model and return normalized outputs, health, recommendations, and optional state token.",
			InputSchema: CalculateSchema(),
			Handler:     s.handleCalculate,
		},
		{
			Name:        "finops.health",
			Description: "Compute health zone and score from calculator inputs.",
			InputSchema: HealthSchema(),
			Handler:     s.handleHealth,
		},
		{
			Name:        "finops.recommend",
			Description: "Return prioritized recommendations based on health zone, provider, and optional category filter; when inputs are provided, strategic pricing/marketing/CRM recommendations are included.",
			InputSchema: RecommendSchema(),
			Handler:     s.handleRecommend,
		},
		{
			Name:        "finops.state.encode",
			Description: "Encode calculator state into a URL-safe state token.",
			InputSchema: StateEncodeSchema(),
			Handler:     s.handleStateEncode,
		},
		{
			Name:        "finops.state.decode",
			Description: "Decode a URL-safe state token back into calculator state.",
			InputSchema: StateDecodeSchema(),
			Handler:     s.handleStateDecode,
		},
	}
	s.byName = make(map[string]*Tool, len(s.tools))
	for i := range s.tools {
		s.byName[s.tools[i].Name] = &s.tools[i]
	}
	return s
}

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type errorPayload struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Run serves until the stream closes or the context ends. A malformed frame
// body yields a parse error response with a null id; framing itself
// resynchronizes on the next header block.
func (s *Server) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		payload, err := s.readFrame()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if payload == nil {
			continue
		}

		var req request
		if err := json.Unmarshal(payload, &req); err != nil {
			s.writeError(json.RawMessage("null"), codeParseError, "Parse error", nil)
			continue
		}
		s.dispatch(req)
	}
}

// readFrame reads one header block and its body. A header block without a
// valid Content-Length is skipped and reported as nil payload.
func (s *Server) readFrame() ([]byte, error) {
	contentLength := -1
	for {
		line, err := s.in.ReadString('\n')
		if err != nil {
			if err == io.EOF && strings.TrimSpace(line) == "" {
				return nil, io.EOF
			}
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if name, value, ok := strings.Cut(line, ":"); ok {
			if strings.EqualFold(strings.TrimSpace(name), "content-length") {
				n, convErr := strconv.Atoi(strings.TrimSpace(value))
				if convErr == nil && n >= 0 {
					contentLength = n
				}
			}
		}
	}

	if contentLength < 0 {
		return nil, nil
	}
	payload := make([]byte, contentLength)
	if _, err := io.ReadFull(s.in, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *Server) dispatch(req request) {
	if req.Method == "" {
		if req.ID != nil {
			s.writeError(req.ID, codeInvalidRequest, "Invalid Request", nil)
		}
		return
	}

	switch req.Method {
	case "initialize":
		s.handleInitialize(req)
	case "ping":
		s.writeResponse(req.ID, map[string]interface{}{})
	case "tools/list":
		s.handleToolsList(req)
	case "tools/call":
		s.handleToolsCall(req)
	case "notifications/initialized":
		// Notification, nothing to answer.
	default:
		if req.ID != nil {
			s.writeError(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), nil)
		}
	}
}

func (s *Server) handleInitialize(req request) {
	var params struct {
		ProtocolVersion string `json:"protocolVersion"`
	}
	_ = json.Unmarshal(req.Params, &params)
	version := params.ProtocolVersion
	if version == "" {
		version = protocolVersionDefault
	}

	s.writeResponse(req.ID, map[string]interface{}{
		"protocolVersion": version,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]string{
			"name":    ServerName,
			"version": ServerVersion,
		},
	})
}

func (s *Server) handleToolsList(req request) {
	listed := make([]map[string]interface{}, len(s.tools))
	for i, tool := range s.tools {
		listed[i] = map[string]interface{}{
			"name":        tool.Name,
			"description": tool.Description,
			"inputSchema": tool.InputSchema,
		}
	}
	s.writeResponse(req.ID, map[string]interface{}{"tools": listed})
}

func (s *Server) handleToolsCall(req request) {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	_ = json.Unmarshal(req.Params, &params)

	tool, ok := s.byName[params.Name]
	if !ok {
		s.writeError(req.ID, codeInvalidParams, fmt.Sprintf("Unknown tool: %s", params.Name), nil)
		return
	}

	args := params.Arguments
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	structured, err := tool.Handler(args)
	if err != nil {
		s.log.Warn("tool call failed", zap.String("tool", tool.Name), zap.Error(err))
		s.writeResponse(req.ID, map[string]interface{}{
			"content": []map[string]interface{}{
				{"type": "text", "text": toolErrorText(err)},
			},
			"isError": true,
		})
		return
	}

	text, err := json.MarshalIndent(structured, "", "  ")
	if err != nil {
		s.writeResponse(req.ID, map[string]interface{}{
			"content": []map[string]interface{}{
				{"type": "text", "text": "Tool execution failed"},
			},
			"isError": true,
		})
		return
	}

	s.writeResponse(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "text", "text": string(text)},
		},
		"structuredContent": structured,
	})
}

func (s *Server) handleCalculate(raw json.RawMessage) (interface{}, error) {
	var args engine.CalculateArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	return s.eng.Calculate(args)
}

func (s *Server) handleHealth(raw json.RawMessage) (interface{}, error) {
	var args struct {
		Inputs map[string]interface{} `json:"inputs"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	return s.eng.Health(args.Inputs), nil
}

func (s *Server) handleRecommend(raw json.RawMessage) (interface{}, error) {
	var args engine.RecommendArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"recommendations": s.eng.Recommend(args),
	}, nil
}

func (s *Server) handleStateEncode(raw json.RawMessage) (interface{}, error) {
	var args engine.EncodeStateArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	token, err := s.eng.EncodeState(args)
	if err != nil {
		return nil, err
	}
	return map[string]string{"stateToken": token}, nil
}

func (s *Server) handleStateDecode(raw json.RawMessage) (interface{}, error) {
	var args struct {
		StateToken string `json:"stateToken"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	state, err := s.eng.DecodeState(args.StateToken)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"state": state}, nil
}

func (s *Server) writeResponse(id json.RawMessage, result interface{}) {
	if id == nil {
		id = json.RawMessage("null")
	}
	s.writeMessage(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"result":  result,
	})
}

func (s *Server) writeError(id json.RawMessage, code int, message string, data interface{}) {
	if id == nil {
		id = json.RawMessage("null")
	}
	s.writeMessage(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"error":   errorPayload{Code: code, Message: message, Data: data},
	})
}

func (s *Server) writeMessage(msg interface{}) {
	payload, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("marshal response", zap.Error(err))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "Content-Length: %d\r\n\r\n", len(payload))
	s.out.Write(payload)
}

// toolErrorText exposes the plain message the tool raised, without the
// internal error-type prefix or wrapped causes.
func toolErrorText(err error) string {
	var domainErr *errors.Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}
