package server

import (
	"fmt"
	"net"
	"net/http"
	"sort"
	"sync"

	"github.com/gorilla/mux"

	"github.com/strk/classifier/pipeline"
	"github.com/strk/classifier/store"
)

// Server is the HTTP transport used to define and feed pipelines. It owns a
// registry of live pipelines and the store their definitions persist in.
// Classifiers are single-threaded; the server serializes every put through
// its registry mutex.
type Server struct {
	sync.Mutex
	*http.Server
	*mux.Router
	store     *store.Store
	pipelines map[string]*pipeline.Pipeline
	listener  net.Listener
	Version   string
}

// NewServer creates a new Server instance persisting to the store file at
// path.
func NewServer(port uint, path string) *Server {
	s := &Server{
		Server:    &http.Server{Addr: fmt.Sprintf(":%d", port)},
		Router:    mux.NewRouter(),
		store:     store.New(path),
		pipelines: make(map[string]*pipeline.Pipeline),
	}
	s.Handler = s

	installPipelineHandler(s)
	installItemHandler(s)

	return s
}

// Path returns the location of the server's store on disk.
func (s *Server) Path() string {
	return s.store.Path()
}

// ListenAndServe opens the store, reloads persisted pipelines, and listens on
// the configured port.
func (s *Server) ListenAndServe() error {
	defer s.Close()

	if err := s.open(); err != nil {
		return err
	}

	listener, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.listener = listener

	return s.Server.Serve(s.listener)
}

// open opens the store and rebuilds the registry from persisted definitions.
// Reloaded pipelines start with empty classifiers; snapshots are read-models
// and are never replayed into aggregators.
func (s *Server) open() error {
	if err := s.store.Open(); err != nil {
		return err
	}

	definitions, err := s.store.Pipelines()
	if err != nil {
		return err
	}
	for name, definition := range definitions {
		p, err := pipeline.New(name, definition)
		if err != nil {
			return fmt.Errorf("reload %s: %s", name, err)
		}
		s.pipelines[name] = p
	}

	return nil
}

// Close closes the listener and the store.
func (s *Server) Close() {
	if s.listener != nil {
		s.listener.Close()
		s.listener = nil
	}
	s.store.Close()
}

// HandleFunc registers a handler for a path, wrapping it with request
// decoding and response encoding.
func (s *Server) HandleFunc(path string, h Handler) *mux.Route {
	return s.Router.Handle(path, &httpHandler{s, h})
}

// pipeline returns the named pipeline, or nil.
func (s *Server) pipeline(name string) *pipeline.Pipeline {
	s.Lock()
	defer s.Unlock()
	return s.pipelines[name]
}

// names returns the registered pipeline names, sorted.
func (s *Server) names() []string {
	s.Lock()
	defer s.Unlock()
	names := make([]string, 0, len(s.pipelines))
	for name := range s.pipelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
