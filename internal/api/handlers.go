package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/meshwork-io/grpc-hub/internal/proxy"
	"github.com/meshwork-io/grpc-hub/internal/registry"
)

// MethodSchema is one method entry in the service schema response.
type MethodSchema struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	RequestSchema string `json:"request_schema"`
}

// ServiceSchema is the schema view of one registered service.
type ServiceSchema struct {
	ServiceName    string            `json:"service_name"`
	ServiceVersion string            `json:"service_version"`
	ServiceAddress string            `json:"service_address"`
	ServicePort    string            `json:"service_port"`
	Methods        []MethodSchema    `json:"methods"`
	Metadata       map[string]string `json:"metadata"`
}

func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	records := s.store.List(registry.Filter{
		Name:    r.URL.Query().Get("name"),
		Version: r.URL.Query().Get("version"),
	})
	writeJSON(w, http.StatusOK, map[string]any{"services": records})
}

func (s *Server) handleServiceSchema(w http.ResponseWriter, r *http.Request) {
	records := s.store.List(registry.Filter{})

	schemas := make([]ServiceSchema, 0, len(records))
	for _, rec := range records {
		methods := make([]MethodSchema, 0, len(rec.Methods))
		for _, m := range rec.Methods {
			methods = append(methods, parseMethodSchema(m))
		}
		schemas = append(schemas, ServiceSchema{
			ServiceName:    rec.Name,
			ServiceVersion: rec.Version,
			ServiceAddress: rec.Address,
			ServicePort:    rec.Port,
			Methods:        methods,
			Metadata:       rec.Metadata,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"schemas": schemas})
}

// parseMethodSchema splits a registered method descriptor of the form
// "Name(RequestType)" into its parts. Free-form strings that do not
// match the pattern come back with an empty request schema.
func parseMethodSchema(raw string) MethodSchema {
	ms := MethodSchema{Name: raw, Description: raw}
	open := strings.Index(raw, "(")
	if open < 0 {
		return ms
	}
	ms.Name = raw[:open]
	if end := strings.LastIndex(raw, ")"); end > open {
		ms.RequestSchema = raw[open+1 : end]
	}
	return ms
}

func (s *Server) handleUnregisterService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "service_id")
	if err := s.store.Unregister(id); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"success": false,
				"message": "service not found",
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "service unregistered",
	})
}

func (s *Server) handleServiceStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ServiceID string `json:"service_id"`
		Status    string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.store.SetStatus(req.ServiceID, req.Status)
	switch {
	case errors.Is(err, registry.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "service not found",
		})
	case errors.Is(err, registry.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "status updated",
		})
	}
}

func (s *Server) handleGRPCCall(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Service string          `json:"service"`
		Method  string          `json:"method"`
		Input   json.RawMessage `json:"input"`
		Host    string          `json:"host"`
		Port    string          `json:"port"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data, err := s.proxy.Call(r.Context(), proxy.Request{
		Service: req.Service,
		Method:  req.Method,
		Payload: req.Input,
		Host:    req.Host,
		Port:    req.Port,
	})
	if err != nil {
		writeError(w, callStatusCode(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    json.RawMessage(data),
	})
}

// callStatusCode maps proxy error kinds onto HTTP status codes.
func callStatusCode(err error) int {
	switch proxy.Kind(err) {
	case proxy.KindNotFound:
		return http.StatusNotFound
	case proxy.KindInvalidArgument:
		return http.StatusBadRequest
	case proxy.KindDispatchFailure, proxy.KindTimeout:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
