package server

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"

	"github.com/gorilla/mux"
	"github.com/ugorji/go/codec"
)

// itemHandler handles the ingestion of items into pipelines.
type itemHandler struct {
	s *Server
}

// installItemHandler adds ingestion routes to the server.
func installItemHandler(s *Server) *itemHandler {
	h := &itemHandler{s: s}

	s.HandleFunc("/pipelines/{name}/items", EnsureMapHandler(EnsurePipelineHandler(HandleFunc(h.putItem)))).Methods("POST")

	// Streaming import.
	s.Router.HandleFunc("/pipelines/{name}/items", h.putItemStream).Methods("PATCH")

	return h
}

// putItem routes a single JSON item into the pipeline.
func (h *itemHandler) putItem(s *Server, req Request) (interface{}, error) {
	p := req.Pipeline()
	item := req.Data().(map[string]interface{})

	s.Lock()
	err := p.Put(item)
	s.Unlock()

	return nil, err
}

// putItemStream routes a stream of msgpack-encoded items into the pipeline.
// The response reports the number of items ingested; a failed item aborts the
// stream after the preceding items have been accumulated.
func (h *itemHandler) putItemStream(w http.ResponseWriter, r *http.Request) {
	s := h.s
	p := s.pipeline(mux.Vars(r)["name"])
	if p == nil {
		writeError(w, ErrPipelineNotFound)
		return
	}

	var handle codec.MsgpackHandle
	handle.RawToString = true
	handle.MapType = reflect.TypeOf(map[string]interface{}(nil))
	decoder := codec.NewDecoder(r.Body, &handle)

	count := 0
	for {
		var item map[string]interface{}
		if err := decoder.Decode(&item); err == io.EOF {
			break
		} else if err != nil {
			writeError(w, err)
			return
		}

		s.Lock()
		err := p.Put(item)
		s.Unlock()
		if err != nil {
			writeError(w, err)
			return
		}
		count++
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"items_ingested": count})
}
