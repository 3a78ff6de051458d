package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/strk/classifier/pipeline"
	"github.com/strk/classifier/store"
)

var (
	// ErrPipelineNotFound is returned when a route references a pipeline
	// that is not registered.
	ErrPipelineNotFound = errors.New("pipeline not found")

	// ErrPipelineNameRequired is returned when creating a pipeline without
	// a name.
	ErrPipelineNameRequired = errors.New("pipeline name required")

	// ErrPipelineExists is returned when creating a pipeline whose name is
	// already registered.
	ErrPipelineExists = errors.New("pipeline already exists")

	// ErrMapRequired is returned when a handler requires a JSON object body.
	ErrMapRequired = errors.New("map input required")
)

// Handler processes a decoded request and returns a response value or an
// error.
type Handler func(s *Server, req Request) (interface{}, error)

// HandleFunc adapts a handler method to the Handler type.
func HandleFunc(fn func(s *Server, req Request) (interface{}, error)) Handler {
	return Handler(fn)
}

// EnsurePipelineHandler resolves the {name} route variable to a registered
// pipeline before invoking the handler.
func EnsurePipelineHandler(h Handler) Handler {
	return func(s *Server, req Request) (interface{}, error) {
		p := s.pipeline(req.Var("name"))
		if p == nil {
			return nil, ErrPipelineNotFound
		}
		req.SetPipeline(p)
		return h(s, req)
	}
}

// EnsureMapHandler requires the request body to be a JSON object.
func EnsureMapHandler(h Handler) Handler {
	return func(s *Server, req Request) (interface{}, error) {
		if _, ok := req.Data().(map[string]interface{}); !ok {
			return nil, ErrMapRequired
		}
		return h(s, req)
	}
}

// httpHandler decodes incoming requests and encodes handler results as JSON.
type httpHandler struct {
	s *Server
	h Handler
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &request{vars: mux.Vars(r)}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req.data); err != nil {
			writeError(w, err)
			return
		}
	}

	ret, err := h.h(h.s, req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if ret != nil {
		json.NewEncoder(w).Encode(ret)
	}
}

// writeError encodes an error response with an appropriate status code.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch err {
	case ErrPipelineNotFound, store.ErrPipelineNotFound, store.ErrSnapshotNotFound:
		status = http.StatusNotFound
	case ErrPipelineNameRequired, ErrPipelineExists, ErrMapRequired,
		pipeline.ErrGroupByRequired, pipeline.ErrFieldRequired:
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"message": err.Error()})
}
