package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/ugorji/go/codec"
)

var testurl string

// runTestServer starts an in-memory server around a temporary store and runs
// the given function against it.
func runTestServer(f func(s *Server)) {
	dir, err := os.MkdirTemp("", "classifier-")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	s := NewServer(0, filepath.Join(dir, "classifier.db"))
	if err := s.open(); err != nil {
		panic(err)
	}
	defer s.Close()

	ts := httptest.NewServer(s)
	defer ts.Close()
	testurl = ts.URL

	f(s)
}

func sendJSON(method, path, body string) (int, interface{}) {
	req, err := http.NewRequest(method, testurl+path, strings.NewReader(body))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	var ret interface{}
	json.NewDecoder(resp.Body).Decode(&ret)
	return resp.StatusCode, ret
}

func getJSON(path string) (int, interface{}) {
	return sendJSON("GET", path, "")
}

func postJSON(path, body string) (int, interface{}) {
	return sendJSON("POST", path, body)
}

func deleteJSON(path string) (int, interface{}) {
	return sendJSON("DELETE", path, "")
}

// patchMsgpack sends a stream of msgpack-encoded items.
func patchMsgpack(path string, items []map[string]interface{}) (int, interface{}) {
	var handle codec.MsgpackHandle
	handle.RawToString = true
	handle.MapType = reflect.TypeOf(map[string]interface{}(nil))

	var buf bytes.Buffer
	encoder := codec.NewEncoder(&buf, &handle)
	for _, item := range items {
		if err := encoder.Encode(item); err != nil {
			panic(err)
		}
	}

	req, err := http.NewRequest("PATCH", testurl+path, &buf)
	if err != nil {
		panic(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	var ret interface{}
	json.NewDecoder(resp.Body).Decode(&ret)
	return resp.StatusCode, ret
}

func jsonenc(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
