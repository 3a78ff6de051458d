package server

import (
	"encoding/json"

	"github.com/strk/classifier/pipeline"
)

// pipelineHandler handles the management of pipeline definitions.
type pipelineHandler struct {
	s *Server
}

// installPipelineHandler adds pipeline routes to the server.
func installPipelineHandler(s *Server) *pipelineHandler {
	h := &pipelineHandler{s: s}

	s.HandleFunc("/pipelines", HandleFunc(h.getPipelines)).Methods("GET")
	s.HandleFunc("/pipelines", EnsureMapHandler(HandleFunc(h.createPipeline))).Methods("POST")
	s.HandleFunc("/pipelines/{name}", EnsurePipelineHandler(HandleFunc(h.getPipeline))).Methods("GET")
	s.HandleFunc("/pipelines/{name}", EnsurePipelineHandler(HandleFunc(h.deletePipeline))).Methods("DELETE")
	s.HandleFunc("/pipelines/{name}/state", EnsurePipelineHandler(HandleFunc(h.getState))).Methods("GET")

	return h
}

// pipelineMessage is the wire shape of a pipeline definition.
type pipelineMessage struct {
	Name string `json:"name"`
	pipeline.Definition
}

// getPipelines lists the registered pipeline names.
func (h *pipelineHandler) getPipelines(s *Server, req Request) (interface{}, error) {
	return map[string]interface{}{"pipelines": s.names()}, nil
}

// createPipeline registers and persists a new pipeline.
func (h *pipelineHandler) createPipeline(s *Server, req Request) (interface{}, error) {
	b, err := json.Marshal(req.Data())
	if err != nil {
		return nil, err
	}
	var msg pipelineMessage
	if err := json.Unmarshal(b, &msg); err != nil {
		return nil, err
	}
	if msg.Name == "" {
		return nil, ErrPipelineNameRequired
	}

	p, err := pipeline.New(msg.Name, msg.Definition)
	if err != nil {
		return nil, err
	}

	s.Lock()
	if _, ok := s.pipelines[msg.Name]; ok {
		s.Unlock()
		return nil, ErrPipelineExists
	}
	s.pipelines[msg.Name] = p
	s.Unlock()

	if err := s.store.SavePipeline(msg.Name, msg.Definition); err != nil {
		return nil, err
	}
	return msg, nil
}

// getPipeline returns a pipeline's definition.
func (h *pipelineHandler) getPipeline(s *Server, req Request) (interface{}, error) {
	p := req.Pipeline()
	return pipelineMessage{Name: p.Name, Definition: p.Definition}, nil
}

// deletePipeline removes the pipeline from the registry and the store.
func (h *pipelineHandler) deletePipeline(s *Server, req Request) (interface{}, error) {
	p := req.Pipeline()

	s.Lock()
	delete(s.pipelines, p.Name)
	s.Unlock()

	return nil, s.store.DeletePipeline(p.Name)
}

// getState returns the pipeline's realized aggregation tree and persists it
// as the latest snapshot.
func (h *pipelineHandler) getState(s *Server, req Request) (interface{}, error) {
	p := req.Pipeline()

	s.Lock()
	state := p.State()
	s.Unlock()

	if err := s.store.SaveSnapshot(p.Name, state); err != nil {
		return nil, err
	}
	return state, nil
}
