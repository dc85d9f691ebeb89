// Package api - Thin HTTP layer over the calculator engine
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. It NEVER performs calculator logic.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"finops-calc/core/engine"
)

// ServiceName identifies this service in health and index responses.
const ServiceName = "finops-calc-agent-hub"

// Server is the API server
type Server struct {
	handler       *Handler
	mux           *http.ServeMux
	log           *zap.Logger
	allowedOrigin string
	version       string
}

// NewServer creates a new API server
func NewServer(eng *engine.Engine, log *zap.Logger, allowedOrigin, version string) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		handler:       NewHandler(eng),
		mux:           http.NewServeMux(),
		log:           log,
		allowedOrigin: allowedOrigin,
		version:       version,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /v1/agent/triage", s.handleTriage)
	s.mux.HandleFunc("/", s.handleNotFound)
}

// handleNotFound keeps unknown routes on the JSON error envelope
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, "", "Route not found", http.StatusNotFound)
}

// handleHealthz handles GET /healthz
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "ok",
		"service": ServiceName,
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleIndex handles GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "ok",
		"service": ServiceName,
		"docs": map[string]string{
			"health": "GET /healthz",
			"triage": "POST /v1/agent/triage",
		},
	}, http.StatusOK)
}

// handleTriage handles POST /v1/agent/triage
func (s *Server) handleTriage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req TriageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "", fmt.Sprintf("Invalid JSON body: %v", err), http.StatusBadRequest)
		return
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = fmt.Sprintf("triage-%s", uuid.NewString())
	}

	if req.Inputs == nil {
		s.writeJSON(w, ErrorResponse{
			RequestID: requestID,
			Status:    "needs-input",
			Error:     "Missing required object: inputs",
		}, http.StatusBadRequest)
		return
	}

	resp, err := s.handler.Triage(requestID, &req)
	if err != nil {
		s.log.Error("triage failed", zap.String("requestId", requestID), zap.Error(err))
		s.writeError(w, requestID, err.Error(), http.StatusInternalServerError)
		return
	}

	s.log.Info("triage served",
		zap.String("requestId", requestID),
		zap.String("zone", string(resp.Summary.CurrentZoneKey)),
		zap.Duration("duration", time.Since(start)))
	s.writeJSON(w, resp, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, requestID, message string, status int) {
	s.writeJSON(w, ErrorResponse{
		RequestID: requestID,
		Status:    "error",
		Error:     message,
	}, status)
}

// ServeHTTP implements http.Handler with CORS applied to every route
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "content-type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("api listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s)
}
