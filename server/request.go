package server

import (
	"github.com/strk/classifier/pipeline"
)

// Request is a high level interface to the router methods on the server.
// It abstracts the HTTP request to a more basic level.
type Request interface {
	Var(string) string
	Data() interface{}
	Pipeline() *pipeline.Pipeline
	SetPipeline(*pipeline.Pipeline)
}

// request is the concrete implementation of the Request interface.
type request struct {
	vars     map[string]string
	data     interface{}
	pipeline *pipeline.Pipeline
}

// Var returns a URL string variable.
func (r *request) Var(key string) string {
	return r.vars[key]
}

// Data returns the parsed input data.
func (r *request) Data() interface{} {
	return r.data
}

// Pipeline returns the pipeline resolved for the request.
func (r *request) Pipeline() *pipeline.Pipeline {
	return r.pipeline
}

// SetPipeline sets the pipeline for the request.
func (r *request) SetPipeline(p *pipeline.Pipeline) {
	r.pipeline = p
}
