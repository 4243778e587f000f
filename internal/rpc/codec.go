package rpc

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec is a connect.Codec over encoding/json for the plain request and
// response structs in this package. The service has no generated protobuf
// types, so handlers and clients both register this codec and speak
// application/json on the wire.
type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	return json.Unmarshal(data, message)
}
