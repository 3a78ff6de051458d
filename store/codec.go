package store

import (
	"bytes"
	"reflect"

	"github.com/ugorji/go/codec"
)

// msgpackHandle builds the handle used for all stored values. Maps decode as
// map[string]interface{} at every level so snapshot trees round-trip with the
// shape classifiers produce.
func msgpackHandle() *codec.MsgpackHandle {
	var handle codec.MsgpackHandle
	handle.RawToString = true
	handle.MapType = reflect.TypeOf(map[string]interface{}(nil))
	return &handle
}

// marshal encodes a value as msgpack.
func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := codec.NewEncoder(&buf, msgpackHandle()).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unmarshal decodes a msgpack value.
func unmarshal(b []byte, v interface{}) error {
	return codec.NewDecoder(bytes.NewBuffer(b), msgpackHandle()).Decode(v)
}
